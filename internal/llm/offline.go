package llm

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Offline produces canned coaching texts without contacting a model. It is
// meant for local practice runs and demos.
type Offline struct{}

// GenerateText implements interview.TextGenerator.
func (Offline) GenerateText(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch {
	case strings.HasPrefix(prompt, "Based on this interview exchange"):
		return offlineEvaluation(lastCandidateLine(prompt)), nil
	case strings.HasPrefix(prompt, "Based on this evaluation"):
		return "You answered the question directly, which is a good start. " +
			"Work on backing your points with one concrete example and its outcome.", nil
	default:
		return "Overall you communicated clearly. Strengths: direct answers. " +
			"Areas for improvement: concrete examples and measurable results. " +
			"Recommendation: rehearse two or three stories using the STAR method.", nil
	}
}

func offlineEvaluation(answer string) string {
	words := len(strings.FieldsFunc(answer, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	}))

	switch {
	case words == 0:
		return "No answer was given, so the response could not be assessed."
	case words < 20:
		return fmt.Sprintf("The answer is brief (%d words). It lacks context, "+
			"the actions taken and the result.", words)
	default:
		return fmt.Sprintf("The answer covers the question in %d words. "+
			"The result of the actions could be stated more explicitly.", words)
	}
}

func lastCandidateLine(prompt string) string {
	var answer string
	for line := range strings.SplitSeq(prompt, "\n") {
		if text, ok := strings.CutPrefix(line, "Candidate: "); ok {
			answer = text
		}
	}
	return answer
}
