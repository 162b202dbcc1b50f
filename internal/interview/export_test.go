package interview

var (
	PresentQuestion  = presentQuestion
	AcceptAnswer     = acceptAnswer
	RecordEvaluation = recordEvaluation
	RecordFeedback   = recordFeedback
	RecordSummary    = recordSummary
	EvaluationPrompt = evaluationPrompt
	FeedbackPrompt   = feedbackPrompt
	SummaryPrompt    = summaryPrompt
)

type KeyedMutex = keyedMutex

var NewKeyedMutex = newKeyedMutex

func (k *keyedMutex) Len() int {
	return k.len()
}

// HeldLocks returns the number of session ids currently locked or awaited.
func (s *Service) HeldLocks() int {
	return s.locks.len()
}
