package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/interview-manager/internal/question"
	"github.com/openkcm/interview-manager/internal/serviceerr"
)

const DefaultGenerationTimeout = 60 * time.Second

var (
	ErrEmptyGeneration   = errors.New("model returned no text")
	ErrGenerationTimeout = errors.New("text generation timed out")
)

// TextGenerator produces text for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// QuestionSelector picks the next question of an interview.
type QuestionSelector interface {
	Select(category question.Category, difficulty question.Difficulty, round int, used []string) string
}

// Generation is the outcome of one text generation step. A failed
// generation still renders to a non-empty diagnostic text.
type Generation struct {
	Text string
	Err  error
}

func (g Generation) Failed() bool {
	return g.Err != nil
}

func (g Generation) render(diagnostic string) string {
	if g.Err != nil {
		return diagnostic + ": " + g.Err.Error()
	}
	return g.Text
}

const (
	stepEvaluation = "evaluation"
	stepFeedback   = "feedback"
	stepSummary    = "summary"
)

var diagnostics = map[string]string{
	stepEvaluation: "Error evaluating response",
	stepFeedback:   "Error generating feedback",
	stepSummary:    "Error generating summary",
}

// Machine drives a session through its phases. It runs every step eagerly
// until the session either waits for an answer or is done.
type Machine struct {
	selector  QuestionSelector
	generator TextGenerator
	timeout   time.Duration
	meter     metric.Meter

	failures metric.Int64Counter
}

type MachineOption func(*Machine)

// WithGenerationTimeout bounds every text generation call. Non-positive
// values keep the default.
func WithGenerationTimeout(timeout time.Duration) MachineOption {
	return func(m *Machine) {
		if timeout > 0 {
			m.timeout = timeout
		}
	}
}

func WithMachineMeter(meter metric.Meter) MachineOption {
	return func(m *Machine) { m.meter = meter }
}

func NewMachine(selector QuestionSelector, generator TextGenerator, opts ...MachineOption) (*Machine, error) {
	m := &Machine{
		selector:  selector,
		generator: generator,
		timeout:   DefaultGenerationTimeout,
		meter:     otel.Meter(instrumentationName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	var err error
	m.failures, err = m.meter.Int64Counter(
		"interview.generation_failures",
		metric.WithDescription("Text generations replaced by a diagnostic"),
		metric.WithUnit("generation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating generation failure counter: %w", err)
	}

	return m, nil
}

// Answer records the candidate's answer. It is only accepted while the
// session waits for input.
func (m *Machine) Answer(s Session, text string) (Session, error) {
	return acceptAnswer(s, text)
}

// Advance runs s until it reaches the awaiting_answer suspend point or done.
// The returned session never shares memory with s.
func (m *Machine) Advance(ctx context.Context, s Session) (Session, error) {
	s = s.Clone()
	for {
		switch s.Phase {
		case PhaseAwaitingAnswer, PhaseDone:
			return s, nil
		case PhaseAwaitingQuestion:
			q := m.selector.Select(s.Category, s.Difficulty, s.Round, s.UsedQuestions)
			s = presentQuestion(s, q)
		case PhaseScoring:
			s = recordEvaluation(s, m.generate(ctx, stepEvaluation, evaluationPrompt(s)))
		case PhaseFeedback:
			s = recordFeedback(s, m.generate(ctx, stepFeedback, feedbackPrompt(s)))
		case PhaseSummarizing:
			s = recordSummary(s, m.generate(ctx, stepSummary, summaryPrompt(s)))
		default:
			return s, fmt.Errorf("%w: unknown phase %q", ErrInvariantViolation, s.Phase)
		}
	}
}

func (m *Machine) generate(ctx context.Context, step, prompt string) Generation {
	text, err := callWithTimeout(ctx, m.timeout, func(ctx context.Context) (string, error) {
		return m.generator.GenerateText(ctx, prompt)
	})
	g := Generation{Text: text, Err: err}

	if g.Err == nil && strings.TrimSpace(g.Text) == "" {
		g.Err = ErrEmptyGeneration
	}

	if g.Failed() {
		slogctx.Warn(ctx, "Text generation failed, using diagnostic", "step", step, "error", g.Err)
		m.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("step", step)))
	}

	return g
}

func presentQuestion(s Session, q string) Session {
	s = s.Clone()
	if q != question.NoMoreQuestions {
		s.UsedQuestions = append(s.UsedQuestions, q)
	}
	s.CurrentQuestion = q
	s.Transcript = append(s.Transcript, Turn{Asker: AskerInterviewer, Text: questionLabel(s.Round, q)})
	s.Phase = PhaseAwaitingAnswer
	return s
}

func acceptAnswer(s Session, text string) (Session, error) {
	if s.Phase != PhaseAwaitingAnswer {
		return s, serviceerr.ErrInvalidPhase
	}

	s = s.Clone()
	s.PendingAnswer = text
	s.Transcript = append(s.Transcript, Turn{Asker: AskerCandidate, Text: text})
	s.Phase = PhaseScoring
	return s, nil
}

func recordEvaluation(s Session, g Generation) Session {
	s = s.Clone()
	s.Evaluations = append(s.Evaluations, g.render(diagnostics[stepEvaluation]))
	s.Phase = PhaseFeedback
	return s
}

func recordFeedback(s Session, g Generation) Session {
	s = s.Clone()
	s.Feedbacks = append(s.Feedbacks, g.render(diagnostics[stepFeedback]))
	s.Round++
	s.PendingAnswer = ""
	if s.Round >= s.MaxRounds {
		s.Phase = PhaseSummarizing
	} else {
		s.Phase = PhaseAwaitingQuestion
	}
	return s
}

func recordSummary(s Session, g Generation) Session {
	s = s.Clone()
	s.Summary = g.render(diagnostics[stepSummary])
	s.Phase = PhaseDone
	return s
}
