package interview_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkcm/interview-manager/internal/interview"
	"github.com/openkcm/interview-manager/internal/question"
	"github.com/openkcm/interview-manager/internal/serviceerr"
)

func freshSession(rounds int) interview.Session {
	return interview.NewSession("s1", rounds, question.DifficultyEasy, question.CategoryBehavioral, time.Unix(0, 0))
}

func TestTransitionsArePure(t *testing.T) {
	s := freshSession(1)
	before := s.Clone()

	asked := interview.PresentQuestion(s, "Tell me about yourself.")
	assert.Empty(t, cmp.Diff(before, s), "presentQuestion mutated its input")
	assert.Equal(t, interview.PhaseAwaitingAnswer, asked.Phase)
	assert.Equal(t, []string{"Tell me about yourself."}, asked.UsedQuestions)
	assert.Equal(t, []interview.Turn{{Asker: interview.AskerInterviewer, Text: "Question 1: Tell me about yourself."}}, asked.Transcript)

	askedBefore := asked.Clone()
	answered, err := interview.AcceptAnswer(asked, "I am a developer.")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(askedBefore, asked), "acceptAnswer mutated its input")
	assert.Equal(t, interview.PhaseScoring, answered.Phase)
	assert.Equal(t, "I am a developer.", answered.PendingAnswer)

	scored := interview.RecordEvaluation(answered, interview.Generation{Text: "solid"})
	assert.Equal(t, interview.PhaseFeedback, scored.Phase)
	assert.Equal(t, []string{"solid"}, scored.Evaluations)

	fed := interview.RecordFeedback(scored, interview.Generation{Text: "well done"})
	assert.Equal(t, interview.PhaseSummarizing, fed.Phase)
	assert.Equal(t, 1, fed.Round)
	assert.Empty(t, fed.PendingAnswer)
	assert.Empty(t, scored.Feedbacks)

	done := interview.RecordSummary(fed, interview.Generation{Err: errModelDown})
	assert.Equal(t, interview.PhaseDone, done.Phase)
	assert.Equal(t, "Error generating summary: model is down", done.Summary)
	require.NoError(t, done.Validate())
}

func TestExhaustedPoolIsNotRecorded(t *testing.T) {
	s := interview.PresentQuestion(freshSession(1), question.NoMoreQuestions)

	assert.Equal(t, question.NoMoreQuestions, s.CurrentQuestion)
	assert.Empty(t, s.UsedQuestions)
	assert.Equal(t, interview.PhaseAwaitingAnswer, s.Phase)
}

func TestFeedbackLoopsUntilLastRound(t *testing.T) {
	s := freshSession(2)
	s.Phase = interview.PhaseFeedback
	s.Evaluations = []string{"e1"}

	s = interview.RecordFeedback(s, interview.Generation{Text: "f1"})
	assert.Equal(t, interview.PhaseAwaitingQuestion, s.Phase)
	assert.Equal(t, 1, s.Round)
}

func TestAcceptAnswerOutsideSuspendPoint(t *testing.T) {
	phases := []interview.Phase{
		interview.PhaseAwaitingQuestion,
		interview.PhaseScoring,
		interview.PhaseFeedback,
		interview.PhaseSummarizing,
		interview.PhaseDone,
	}
	for _, phase := range phases {
		t.Run(string(phase), func(t *testing.T) {
			s := freshSession(1)
			s.Phase = phase
			_, err := interview.AcceptAnswer(s, "answer")
			assert.ErrorIs(t, err, serviceerr.ErrInvalidPhase)
		})
	}
}

func TestPrompts(t *testing.T) {
	s := freshSession(3)
	s.Transcript = []interview.Turn{
		{Asker: interview.AskerInterviewer, Text: "Question 1: first"},
		{Asker: interview.AskerCandidate, Text: "old answer"},
		{Asker: interview.AskerInterviewer, Text: "Question 2: second"},
		{Asker: interview.AskerCandidate, Text: "new answer"},
	}
	s.Evaluations = []string{"eval one", "eval two"}
	s.Feedbacks = []string{"fb one"}

	evaluation := interview.EvaluationPrompt(s)
	assert.Contains(t, evaluation, "Interviewer: Question 2: second\nCandidate: new answer\n")
	assert.NotContains(t, evaluation, "old answer")

	feedback := interview.FeedbackPrompt(s)
	assert.Contains(t, feedback, "Based on this evaluation: eval two")
	assert.NotContains(t, feedback, "eval one")

	summary := interview.SummaryPrompt(s)
	assert.Contains(t, summary, "3-question interview")
	assert.Contains(t, summary, "EVALUATIONS:\neval one\neval two")
	assert.Contains(t, summary, "FEEDBACK:\nfb one")
	assert.True(t, strings.HasSuffix(summary, "Be encouraging but honest in your assessment."))
}

func TestMachineAdvance(t *testing.T) {
	m := newMachine(t, &echoGenerator{})
	ctx := t.Context()

	s, err := m.Advance(ctx, freshSession(2))
	require.NoError(t, err)
	assert.Equal(t, interview.PhaseAwaitingAnswer, s.Phase)
	assert.Contains(t, testBank["behavioral"]["easy"], s.CurrentQuestion)

	// Advancing at the suspend point is a no-op.
	again, err := m.Advance(ctx, s)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(s, again))

	s, err = m.Answer(s, "A1")
	require.NoError(t, err)
	s, err = m.Advance(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, interview.PhaseAwaitingAnswer, s.Phase)
	assert.Equal(t, 1, s.Round)
	assert.Equal(t, []string{"evaluation 1"}, s.Evaluations)
	assert.Equal(t, []string{"feedback 2"}, s.Feedbacks)

	s, err = m.Answer(s, "A2")
	require.NoError(t, err)
	s, err = m.Advance(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, interview.PhaseDone, s.Phase)
	assert.Equal(t, "summary 5", s.Summary)
	require.NoError(t, s.Validate())

	_, err = m.Answer(s, "A3")
	assert.ErrorIs(t, err, serviceerr.ErrInvalidPhase)
}

func TestMachineAdvanceUnknownPhase(t *testing.T) {
	m := newMachine(t, &echoGenerator{})
	s := freshSession(1)
	s.Phase = "paused"

	_, err := m.Advance(t.Context(), s)
	assert.ErrorIs(t, err, interview.ErrInvariantViolation)
}

func TestMachineGenerationFailures(t *testing.T) {
	tests := []struct {
		name       string
		generator  interview.TextGenerator
		opts       []interview.MachineOption
		evaluation string
		feedback   string
		summary    string
	}{
		{
			name:       "generator error",
			generator:  failingGenerator{err: errModelDown},
			evaluation: "Error evaluating response: model is down",
			feedback:   "Error generating feedback: model is down",
			summary:    "Error generating summary: model is down",
		},
		{
			name:       "empty output",
			generator:  failingGenerator{},
			evaluation: "Error evaluating response: model returned no text",
			feedback:   "Error generating feedback: model returned no text",
			summary:    "Error generating summary: model returned no text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachine(t, tt.generator, tt.opts...)
			s, err := m.Advance(t.Context(), freshSession(1))
			require.NoError(t, err)
			s, err = m.Answer(s, "answer")
			require.NoError(t, err)

			s, err = m.Advance(t.Context(), s)
			require.NoError(t, err)
			assert.Equal(t, interview.PhaseDone, s.Phase)
			assert.Equal(t, []string{tt.evaluation}, s.Evaluations)
			assert.Equal(t, []string{tt.feedback}, s.Feedbacks)
			assert.Equal(t, tt.summary, s.Summary)
		})
	}
}

func TestMachineGenerationTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	m := newMachine(t, stuckGenerator{release: release}, interview.WithGenerationTimeout(20*time.Millisecond))
	s, err := m.Advance(t.Context(), freshSession(1))
	require.NoError(t, err)
	s, err = m.Answer(s, "answer")
	require.NoError(t, err)

	start := time.Now()
	s, err = m.Advance(t.Context(), s)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	assert.Equal(t, interview.PhaseDone, s.Phase)
	assert.Contains(t, s.Evaluations[0], "Error evaluating response: text generation timed out")
	assert.Contains(t, s.Summary, "Error generating summary")
}
