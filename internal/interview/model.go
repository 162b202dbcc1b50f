package interview

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/openkcm/interview-manager/internal/question"
)

type Phase string

const (
	PhaseAwaitingQuestion Phase = "awaiting_question"
	PhaseAwaitingAnswer   Phase = "awaiting_answer"
	PhaseScoring          Phase = "scoring"
	PhaseFeedback         Phase = "feedback"
	PhaseSummarizing      Phase = "summarizing"
	PhaseDone             Phase = "done"
)

type Asker string

const (
	AskerInterviewer Asker = "interviewer"
	AskerCandidate   Asker = "candidate"
)

// Turn is one entry of the interview transcript.
type Turn struct {
	Asker Asker  `json:"asker"`
	Text  string `json:"text"`
}

// Session is one interview attempt. Rounds are counted from zero and only
// ever move forward.
type Session struct {
	ID         string              `json:"id"`
	Phase      Phase               `json:"phase"`
	Round      int                 `json:"round"`
	MaxRounds  int                 `json:"max_rounds"`
	Difficulty question.Difficulty `json:"difficulty"`
	Category   question.Category   `json:"category"`

	UsedQuestions   []string `json:"used_questions"`
	CurrentQuestion string   `json:"current_question"`
	Transcript      []Turn   `json:"transcript"`
	Evaluations     []string `json:"evaluations"`
	Feedbacks       []string `json:"feedbacks"`
	PendingAnswer   string   `json:"pending_answer"`
	Summary         string   `json:"summary"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Version counts stored updates.
	Version int64 `json:"version"`
}

var ErrInvariantViolation = errors.New("session invariant violated")

// NewSession returns a session that has not been shown any question yet.
func NewSession(id string, maxRounds int, difficulty question.Difficulty, category question.Category, now time.Time) Session {
	return Session{
		ID:            id,
		Phase:         PhaseAwaitingQuestion,
		MaxRounds:     maxRounds,
		Difficulty:    difficulty,
		Category:      category,
		UsedQuestions: []string{},
		Transcript:    []Turn{},
		Evaluations:   []string{},
		Feedbacks:     []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Clone returns a deep copy of s.
func (s Session) Clone() Session {
	s.UsedQuestions = slices.Clone(s.UsedQuestions)
	s.Transcript = slices.Clone(s.Transcript)
	s.Evaluations = slices.Clone(s.Evaluations)
	s.Feedbacks = slices.Clone(s.Feedbacks)
	return s
}

func (s Session) Done() bool {
	return s.Phase == PhaseDone
}

func (s Session) WaitingForInput() bool {
	return s.Phase == PhaseAwaitingAnswer
}

// Validate reports an ErrInvariantViolation if the round accounting of s is
// inconsistent with its phase.
func (s Session) Validate() error {
	if s.MaxRounds <= 0 {
		return fmt.Errorf("%w: max rounds %d", ErrInvariantViolation, s.MaxRounds)
	}
	if s.Round < 0 || s.Round > s.MaxRounds {
		return fmt.Errorf("%w: round %d out of [0, %d]", ErrInvariantViolation, s.Round, s.MaxRounds)
	}

	// Rounds in flight have at most one extra evaluation.
	wantEvaluations := s.Round
	switch s.Phase {
	case PhaseAwaitingQuestion, PhaseAwaitingAnswer, PhaseScoring, PhaseSummarizing:
	case PhaseFeedback:
		wantEvaluations++
	case PhaseDone:
		if s.Round != s.MaxRounds {
			return fmt.Errorf("%w: done after %d of %d rounds", ErrInvariantViolation, s.Round, s.MaxRounds)
		}
		if s.Summary == "" {
			return fmt.Errorf("%w: done without summary", ErrInvariantViolation)
		}
	default:
		return fmt.Errorf("%w: unknown phase %q", ErrInvariantViolation, s.Phase)
	}

	if len(s.Evaluations) != wantEvaluations || len(s.Feedbacks) != s.Round {
		return fmt.Errorf("%w: %d evaluations and %d feedbacks in round %d (%s)",
			ErrInvariantViolation, len(s.Evaluations), len(s.Feedbacks), s.Round, s.Phase)
	}

	if len(s.UsedQuestions) > s.Round+1 {
		return fmt.Errorf("%w: %d questions used in round %d", ErrInvariantViolation, len(s.UsedQuestions), s.Round)
	}
	seen := make(map[string]struct{}, len(s.UsedQuestions))
	for _, q := range s.UsedQuestions {
		if _, ok := seen[q]; ok {
			return fmt.Errorf("%w: question %q repeated", ErrInvariantViolation, q)
		}
		seen[q] = struct{}{}
	}

	return nil
}
