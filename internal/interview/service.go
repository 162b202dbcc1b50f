// Package interview implements the interview session state machine and the
// service that drives it on behalf of callers.
package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/interview-manager/internal/question"
	"github.com/openkcm/interview-manager/internal/report"
	"github.com/openkcm/interview-manager/internal/serviceerr"
)

const (
	DefaultRounds     = 3
	DefaultDifficulty = question.DifficultyMedium
	DefaultCategory   = question.CategoryBehavioral
)

// Transcriber turns recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// Synthesizer turns text into playable audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type StartParams struct {
	ID         string
	MaxRounds  int
	Difficulty question.Difficulty
	Category   question.Category
}

type StartResult struct {
	Question string
	Round    int
}

// AnswerResult describes the round that was just completed. Question and
// Round are set while the interview continues, Summary once it is done.
type AnswerResult struct {
	Evaluation    string
	Feedback      string
	Done          bool
	Question      string
	Round         int
	Summary       string
	Transcription string
}

type Status struct {
	CurrentQuestion string
	Round           int
	MaxRounds       int
	Done            bool
	WaitingForInput bool
}

// Service is the caller facing API of the interview state machine. It owns
// the session repository and serializes all mutations per session id.
type Service struct {
	sessions    Repository
	machine     *Machine
	transcriber Transcriber
	synthesizer Synthesizer
	reports     report.Repository
	now         func() time.Time
	meter       metric.Meter
	timeout     time.Duration

	locks   *keyedMutex
	metrics *instruments
}

type ServiceOption func(*Service)

func WithTranscriber(t Transcriber) ServiceOption {
	return func(s *Service) { s.transcriber = t }
}

func WithSynthesizer(sy Synthesizer) ServiceOption {
	return func(s *Service) { s.synthesizer = sy }
}

// WithArchiver stores a report of every interview that reaches done.
func WithArchiver(r report.Repository) ServiceOption {
	return func(s *Service) { s.reports = r }
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

func WithMeter(meter metric.Meter) ServiceOption {
	return func(s *Service) { s.meter = meter }
}

// WithVoiceTimeout bounds transcription and synthesis calls.
func WithVoiceTimeout(timeout time.Duration) ServiceOption {
	return func(s *Service) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

func NewService(sessions Repository, machine *Machine, opts ...ServiceOption) (*Service, error) {
	s := &Service{
		sessions: sessions,
		machine:  machine,
		now:      time.Now,
		meter:    otel.Meter(instrumentationName),
		timeout:  DefaultGenerationTimeout,
		locks:    newKeyedMutex(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	var err error
	s.metrics, err = newInstruments(s.meter)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Start creates a session and runs it up to its first question.
func (s *Service) Start(ctx context.Context, p StartParams) (StartResult, error) {
	if strings.TrimSpace(p.ID) == "" {
		return StartResult{}, serviceerr.InvalidArgument("session_id must not be empty")
	}
	if p.MaxRounds <= 0 {
		return StartResult{}, serviceerr.InvalidArgument("rounds must be positive")
	}
	if p.Difficulty == "" {
		p.Difficulty = DefaultDifficulty
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	difficulty, err := question.ParseDifficulty(string(p.Difficulty))
	if err != nil {
		return StartResult{}, serviceerr.InvalidArgument(err.Error())
	}
	category, err := question.ParseCategory(string(p.Category))
	if err != nil {
		return StartResult{}, serviceerr.InvalidArgument(err.Error())
	}
	p.Difficulty, p.Category = difficulty, category

	unlock, err := s.locks.Lock(ctx, p.ID)
	if err != nil {
		return StartResult{}, err
	}
	defer unlock()

	_, err = s.sessions.Get(ctx, p.ID)
	switch {
	case err == nil:
		return StartResult{}, serviceerr.ErrConflict
	case !errors.Is(err, serviceerr.ErrNotFound):
		return StartResult{}, fmt.Errorf("checking session: %w", err)
	}

	sess := NewSession(p.ID, p.MaxRounds, p.Difficulty, p.Category, s.now())
	sess, err = s.machine.Advance(context.WithoutCancel(ctx), sess)
	if err != nil {
		return StartResult{}, s.invariantViolation(ctx, sess, err)
	}
	if err := sess.Validate(); err != nil {
		return StartResult{}, s.invariantViolation(ctx, sess, err)
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return StartResult{}, fmt.Errorf("creating session: %w", err)
	}

	s.metrics.started.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", string(sess.Category)),
		attribute.String("difficulty", string(sess.Difficulty)),
	))
	slogctx.Info(ctx, "Started interview", "session_id", sess.ID, "rounds", sess.MaxRounds)

	return StartResult{Question: sess.CurrentQuestion, Round: sess.Round + 1}, nil
}

// SubmitAnswer records a typed answer and runs the session to its next
// question or to the summary.
func (s *Service) SubmitAnswer(ctx context.Context, id, text string) (AnswerResult, error) {
	if strings.TrimSpace(text) == "" {
		return AnswerResult{}, serviceerr.InvalidArgument("answer text must not be empty")
	}

	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		return AnswerResult{}, err
	}
	defer unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return AnswerResult{}, err
	}

	return s.answer(ctx, sess, text)
}

// SubmitAudioAnswer transcribes a spoken answer and continues like
// SubmitAnswer. A failed transcription is replaced by a diagnostic answer.
func (s *Service) SubmitAudioAnswer(ctx context.Context, id string, audio []byte, mimeType string) (AnswerResult, error) {
	if s.transcriber == nil {
		return AnswerResult{}, serviceerr.ErrVoiceDisabled
	}
	if len(audio) == 0 {
		return AnswerResult{}, serviceerr.InvalidArgument("audio must not be empty")
	}

	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		return AnswerResult{}, err
	}
	defer unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return AnswerResult{}, err
	}
	if !sess.WaitingForInput() {
		return AnswerResult{}, serviceerr.ErrInvalidPhase
	}

	text, err := callWithTimeout(context.WithoutCancel(ctx), s.timeout, func(ctx context.Context) (string, error) {
		return s.transcriber.Transcribe(ctx, audio, mimeType)
	})
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyGeneration
	}
	if err != nil {
		slogctx.Warn(ctx, "Transcription failed, using diagnostic", "session_id", id, "error", err)
		text = "Error transcribing audio: " + err.Error()
	}

	res, err := s.answer(ctx, sess, text)
	if err != nil {
		return AnswerResult{}, err
	}
	res.Transcription = text

	return res, nil
}

func (s *Service) answer(ctx context.Context, sess Session, text string) (AnswerResult, error) {
	next, err := s.machine.Answer(sess, text)
	if err != nil {
		return AnswerResult{}, err
	}

	next, err = s.machine.Advance(context.WithoutCancel(ctx), next)
	if err != nil {
		return AnswerResult{}, s.invariantViolation(ctx, next, err)
	}
	next.UpdatedAt = s.now()
	if err := next.Validate(); err != nil {
		return AnswerResult{}, s.invariantViolation(ctx, next, err)
	}

	if err := s.sessions.Update(ctx, next); err != nil {
		if errors.Is(err, ErrStaleSession) {
			slogctx.Warn(ctx, "Answer lost to a concurrent update", "session_id", next.ID, "version", next.Version)
			return AnswerResult{}, errors.Join(serviceerr.ErrInvalidPhase, err)
		}
		return AnswerResult{}, fmt.Errorf("updating session: %w", err)
	}
	s.metrics.rounds.Add(ctx, 1)

	res := AnswerResult{
		Evaluation: next.Evaluations[len(next.Evaluations)-1],
		Feedback:   next.Feedbacks[len(next.Feedbacks)-1],
		Done:       next.Done(),
	}
	if res.Done {
		res.Summary = next.Summary
		s.metrics.completed.Add(ctx, 1)
		slogctx.Info(ctx, "Completed interview", "session_id", next.ID, "rounds", next.Round)
		s.archive(ctx, next)
	} else {
		res.Question = next.CurrentQuestion
		res.Round = next.Round + 1
	}

	return res, nil
}

// Status is a read-only snapshot of a session.
func (s *Service) Status(ctx context.Context, id string) (Status, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return Status{}, err
	}

	return Status{
		CurrentQuestion: sess.CurrentQuestion,
		Round:           sess.Round,
		MaxRounds:       sess.MaxRounds,
		Done:            sess.Done(),
		WaitingForInput: sess.WaitingForInput(),
	}, nil
}

// Summary returns the final summary, or an empty string before the
// interview is done.
func (s *Service) Summary(ctx context.Context, id string) (string, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}

	return sess.Summary, nil
}

// Transcript returns the full session record.
func (s *Service) Transcript(ctx context.Context, id string) (Session, error) {
	return s.load(ctx, id)
}

// Reset deletes a session. Unknown ids are not an error.
func (s *Service) Reset(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return serviceerr.InvalidArgument("session_id must not be empty")
	}

	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	slogctx.Info(ctx, "Reset interview", "session_id", id)

	return nil
}

// Speak synthesizes text into audio.
func (s *Service) Speak(ctx context.Context, text string) ([]byte, error) {
	if s.synthesizer == nil {
		return nil, serviceerr.ErrVoiceDisabled
	}
	if strings.TrimSpace(text) == "" {
		return nil, serviceerr.InvalidArgument("text must not be empty")
	}

	audio, err := callWithTimeout(ctx, s.timeout, func(ctx context.Context) ([]byte, error) {
		return s.synthesizer.Synthesize(ctx, text)
	})
	if err != nil {
		if errors.Is(err, serviceerr.ErrSynthesis) {
			return nil, err
		}
		return nil, errors.Join(serviceerr.ErrSynthesis, err)
	}

	return audio, nil
}

// Report returns the latest archived report of a session.
func (s *Service) Report(ctx context.Context, id string) (report.Report, error) {
	if s.reports == nil {
		return report.Report{}, serviceerr.ErrArchiveDisabled
	}

	return s.reports.Latest(ctx, id)
}

func (s *Service) load(ctx context.Context, id string) (Session, error) {
	if strings.TrimSpace(id) == "" {
		return Session{}, serviceerr.InvalidArgument("session_id must not be empty")
	}

	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if err := sess.Validate(); err != nil {
		return Session{}, s.invariantViolation(ctx, sess, err)
	}

	return sess, nil
}

func (s *Service) invariantViolation(ctx context.Context, sess Session, err error) error {
	slogctx.Error(ctx, "Session is inconsistent", "session_id", sess.ID, "phase", sess.Phase, "error", err)
	return errors.Join(serviceerr.ErrInternal, err)
}

func (s *Service) archive(ctx context.Context, sess Session) {
	if s.reports == nil {
		return
	}

	r := report.Report{
		ID:          uuid.New(),
		SessionID:   sess.ID,
		Category:    string(sess.Category),
		Difficulty:  string(sess.Difficulty),
		Rounds:      sess.MaxRounds,
		Questions:   sess.UsedQuestions,
		Evaluations: sess.Evaluations,
		Feedbacks:   sess.Feedbacks,
		Summary:     sess.Summary,
		Transcript:  make([]report.Turn, 0, len(sess.Transcript)),
		StartedAt:   sess.CreatedAt,
		CompletedAt: sess.UpdatedAt,
	}
	for _, t := range sess.Transcript {
		r.Transcript = append(r.Transcript, report.Turn{Asker: string(t.Asker), Text: t.Text})
	}

	if err := s.reports.Create(ctx, r); err != nil {
		slogctx.Error(ctx, "Could not archive interview report", "session_id", sess.ID, "error", err)
	}
}
