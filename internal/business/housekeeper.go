package business

import (
	"context"
	"errors"
	"fmt"
	"time"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/interview-manager/internal/config"
	"github.com/openkcm/interview-manager/internal/interview"
	"github.com/openkcm/interview-manager/internal/llm"
	"github.com/openkcm/interview-manager/internal/question"
)

var ErrUnsharedStore = errors.New("the housekeeper needs a session store shared with the api server")

// HousekeeperMain starts the house keeping jobs
func HousekeeperMain(ctx context.Context, cfg *config.Config) error {
	// The in-memory store expires idle sessions by itself and is not
	// visible to other processes.
	if cfg.Interview.Store == config.StoreMemory || cfg.Interview.Store == "" {
		return ErrUnsharedStore
	}

	service, closeFn, err := initHousekeepingService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialise the interview service: %w", err)
	}
	defer closeFn()

	return runHousekeeping(ctx, service, cfg.Housekeeper.TriggerInterval, cfg.Interview.IdleSessionTimeout)
}

// initHousekeepingService builds a service that can only clean up sessions.
// It opens the session store and nothing else, so the question bank, the
// model credentials and the report archive are not required.
func initHousekeepingService(ctx context.Context, cfg *config.Config) (*interview.Service, func(), error) {
	sessions, closeRepo, err := sessionRepositoryFromConfig(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("creating session repository: %w", err)
	}

	machine, err := interview.NewMachine(&question.Bank{}, llm.Offline{})
	if err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("creating state machine: %w", err)
	}

	service, err := interview.NewService(sessions, machine)
	if err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("creating interview service: %w", err)
	}

	return service, closeRepo, nil
}

func runHousekeeping(ctx context.Context, service *interview.Service, interval, idleTimeout time.Duration) error {
	// Start the housekeeper loop
	c := time.Tick(interval)
	for {
		slogctx.Info(ctx, "Triggering idle session cleanup")
		err := service.CleanupIdleSessions(ctx, idleTimeout)
		if err != nil {
			slogctx.Error(ctx, "Error during session housekeeping", "error", err)
		}

		select {
		case <-c:
			continue
		case <-ctx.Done():
			return nil
		}
	}
}
