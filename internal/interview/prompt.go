package interview

import (
	"fmt"
	"strings"
)

const evaluationInstruction = "Evaluate the user's response to the interview question. " +
	"Comment on which part is missing or weak. Be concise and specific."

const feedbackInstruction = "Give friendly, constructive feedback to the candidate. " +
	"Mention one specific area to work on and one thing they did well.\n" +
	"Keep it encouraging but actionable."

const summaryInstruction = `Provide a comprehensive summary of the candidate's overall performance. Include:
1. Key strengths demonstrated
2. Main areas for improvement
3. Specific recommendations for interview preparation
4. Overall assessment

Be encouraging but honest in your assessment.`

// questionLabel is how an interviewer turn reads in the transcript.
func questionLabel(round int, q string) string {
	return fmt.Sprintf("Question %d: %s", round+1, q)
}

func evaluationPrompt(s Session) string {
	var b strings.Builder
	b.WriteString("Based on this interview exchange:\n")
	start := max(len(s.Transcript)-2, 0)
	for _, t := range s.Transcript[start:] {
		b.WriteString(speaker(t.Asker))
		b.WriteString(": ")
		b.WriteString(t.Text)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(evaluationInstruction)
	return b.String()
}

func feedbackPrompt(s Session) string {
	var last string
	if n := len(s.Evaluations); n > 0 {
		last = s.Evaluations[n-1]
	}

	var b strings.Builder
	b.WriteString("Based on this evaluation: ")
	b.WriteString(last)
	b.WriteString("\n\n")
	b.WriteString(feedbackInstruction)
	return b.String()
}

func summaryPrompt(s Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an interview coach. Based on the following evaluations and feedback from a %d-question interview:\n\n", s.MaxRounds)
	b.WriteString("EVALUATIONS:\n")
	b.WriteString(strings.Join(s.Evaluations, "\n"))
	b.WriteString("\n\nFEEDBACK:\n")
	b.WriteString(strings.Join(s.Feedbacks, "\n"))
	b.WriteString("\n\n")
	b.WriteString(summaryInstruction)
	return b.String()
}

func speaker(a Asker) string {
	switch a {
	case AskerInterviewer:
		return "Interviewer"
	case AskerCandidate:
		return "Candidate"
	default:
		return "Unknown"
	}
}
