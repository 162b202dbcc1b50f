package business

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openkcm/common-sdk/pkg/commoncfg"
	"github.com/valkey-io/valkey-go"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/interview-manager/internal/business/server"
	"github.com/openkcm/interview-manager/internal/config"
	"github.com/openkcm/interview-manager/internal/interview"
	interviewmemory "github.com/openkcm/interview-manager/internal/interview/memory"
	interviewsqlite "github.com/openkcm/interview-manager/internal/interview/sqlite"
	interviewvalkey "github.com/openkcm/interview-manager/internal/interview/valkey"
	"github.com/openkcm/interview-manager/internal/llm"
	"github.com/openkcm/interview-manager/internal/question"
	"github.com/openkcm/interview-manager/internal/report/reportsql"
)

// Main starts both API servers
func Main(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// errChan is used to capture the first error and shutdown the servers.
	errChan := make(chan error, 2)

	// wg is used to wait for all servers to shutdown.
	var wg sync.WaitGroup

	// start public HTTP REST API server
	wg.Go(func() {
		errChan <- publicMain(ctx, cfg)
	})

	// start internal gRPC API server
	wg.Go(func() {
		errChan <- internalMain(ctx, cfg)
	})

	// wait for any error to initiate the shutdown
	err := <-errChan
	if err != nil {
		slogctx.Error(ctx, "Shutting down servers", "error", err)
	}
	cancel()

	// wait for all servers to shutdown
	wg.Wait()

	return err
}

// publicMain starts the HTTP REST public API server.
func publicMain(ctx context.Context, cfg *config.Config) error {
	service, closeFn, err := initService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialising the interview service: %w", err)
	}
	defer closeFn()

	return server.StartHTTPServer(ctx, cfg, service)
}

// internalMain starts the gRPC private API server.
func internalMain(ctx context.Context, cfg *config.Config) error {
	return server.StartGRPCServer(ctx, cfg)
}

// closers runs cleanup functions in reverse registration order.
type closers []func()

func (c closers) close() {
	for _, fn := range slices.Backward(c) {
		fn()
	}
}

func initService(ctx context.Context, cfg *config.Config) (_ *interview.Service, closeFn func(), err error) {
	var cleanup closers
	defer func() {
		if err != nil {
			cleanup.close()
		}
	}()

	bank, err := question.LoadBank(cfg.Interview.QuestionBankPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading question bank: %w", err)
	}

	sessions, closeRepo, err := sessionRepositoryFromConfig(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("creating session repository: %w", err)
	}
	cleanup = append(cleanup, closeRepo)

	model, err := modelFromConfig(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("creating model client: %w", err)
	}

	machine, err := interview.NewMachine(bank, model,
		interview.WithGenerationTimeout(cfg.Interview.GenerationTimeout),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("creating state machine: %w", err)
	}

	opts := []interview.ServiceOption{
		interview.WithVoiceTimeout(cfg.Interview.GenerationTimeout),
	}

	if voice, ok := model.(*llm.Client); ok && cfg.Model.EnableVoice {
		opts = append(opts, interview.WithTranscriber(voice), interview.WithSynthesizer(voice))
	}

	if cfg.Interview.ArchiveReports {
		db, err := pgxPoolFromConfig(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("creating report archive: %w", err)
		}
		cleanup = append(cleanup, db.Close)
		opts = append(opts, interview.WithArchiver(reportsql.NewRepository(db)))
	}

	service, err := interview.NewService(sessions, machine, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("creating interview service: %w", err)
	}

	slogctx.Info(ctx, "Interview service initialised",
		"store", cfg.Interview.Store,
		"model", cfg.Model.Backend,
		"voice", cfg.Model.EnableVoice,
		"archive", cfg.Interview.ArchiveReports,
	)

	return service, cleanup.close, nil
}

func sessionRepositoryFromConfig(ctx context.Context, cfg *config.Config) (interview.Repository, func(), error) {
	switch cfg.Interview.Store {
	case config.StoreMemory, "":
		return interviewmemory.NewRepository(cfg.Interview.IdleSessionTimeout), func() {}, nil
	case config.StoreValKey:
		client, err := valkeyClientFromConfig(cfg)
		if err != nil {
			return nil, nil, err
		}
		return interviewvalkey.NewRepository(client, cfg.ValKey.Prefix), client.Close, nil
	case config.StoreSQLite:
		repo, err := interviewsqlite.Open(ctx, cfg.Interview.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				slogctx.Warn(ctx, "Failed to close sqlite store", "error", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Interview.Store)
	}
}

func valkeyClientFromConfig(cfg *config.Config) (valkey.Client, error) {
	creds, err := config.LoadValKeyCredentials(cfg.ValKey)
	if err != nil {
		return nil, err
	}

	valkeyOpts := valkey.ClientOption{
		InitAddress: []string{creds.Address},
		Username:    creds.Username,
		Password:    creds.Password,
	}

	if cfg.ValKey.SecretRef.Type == commoncfg.MTLSSecretType {
		tlsConfig, err := commoncfg.LoadMTLSConfig(&cfg.ValKey.SecretRef.MTLS)
		if err != nil {
			return nil, fmt.Errorf("loading valkey mTLS config from secret ref: %w", err)
		}

		valkeyOpts.TLSConfig = tlsConfig
	}

	client, err := valkey.NewClient(valkeyOpts)
	if err != nil {
		return nil, fmt.Errorf("creating a new valkey client: %w", err)
	}

	return client, nil
}

func modelFromConfig(ctx context.Context, cfg *config.Config) (interview.TextGenerator, error) {
	switch cfg.Model.Backend {
	case config.ModelOffline:
		if cfg.Model.EnableVoice {
			slogctx.Warn(ctx, "Voice features are not available with the offline model")
		}
		return llm.Offline{}, nil
	case config.ModelVertex, config.ModelGemini, "":
	default:
		return nil, errors.New("unknown model backend")
	}

	var apiKey []byte
	if cfg.Model.Backend != config.ModelVertex {
		var err error
		apiKey, err = commoncfg.LoadValueFromSourceRef(cfg.Model.APIKey)
		if err != nil {
			return nil, fmt.Errorf("loading model api key: %w", err)
		}
	}

	client, err := llm.NewClient(ctx, &cfg.Model, string(apiKey))
	if err != nil {
		return nil, err
	}

	return client, nil
}

func pgxPoolFromConfig(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	connStr, err := config.MakeConnStr(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("making dsn from config: %w", err)
	}

	poolCfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parsing pgxpool config: %w", err)
	}
	poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("initialising pgxpool connection: %w", err)
	}

	if err := otelpgx.RecordStats(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("recording pgxpool stats: %w", err)
	}

	return db, nil
}
