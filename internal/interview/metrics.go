package interview

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/openkcm/interview-manager/internal/interview"

type instruments struct {
	started   metric.Int64Counter
	rounds    metric.Int64Counter
	completed metric.Int64Counter
}

func newInstruments(meter metric.Meter) (*instruments, error) {
	started, err := meter.Int64Counter(
		"interview.sessions_started",
		metric.WithDescription("Interview sessions started"),
		metric.WithUnit("session"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sessions_started counter: %w", err)
	}

	rounds, err := meter.Int64Counter(
		"interview.rounds_completed",
		metric.WithDescription("Answered and evaluated rounds"),
		metric.WithUnit("round"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rounds_completed counter: %w", err)
	}

	completed, err := meter.Int64Counter(
		"interview.sessions_completed",
		metric.WithDescription("Interview sessions that reached the summary"),
		metric.WithUnit("session"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sessions_completed counter: %w", err)
	}

	return &instruments{started: started, rounds: rounds, completed: completed}, nil
}
