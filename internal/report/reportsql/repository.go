package reportsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"

	"github.com/openkcm/interview-manager/internal/report"
	"github.com/openkcm/interview-manager/internal/serviceerr"
)

type Repository struct {
	db *pgxpool.Pool
}

var _ = report.Repository(&Repository{})

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, rep report.Report) error {
	tracer := otel.GetTracerProvider()
	ctx, span := tracer.Tracer("").Start(ctx, "create_interview_report_sql")
	defer span.End()

	transcript, err := json.Marshal(rep.Transcript)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("marshaling transcript: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO interview_reports
			(id, session_id, category, difficulty, rounds, questions, evaluations, feedbacks, summary, transcript, started_at, completed_at)
			VALUES ($1, $2, $3, $4, $5, COALESCE($6, '{}'::text[]), COALESCE($7, '{}'::text[]), COALESCE($8, '{}'::text[]), $9, $10, $11, $12);`,
		rep.ID, rep.SessionID, rep.Category, rep.Difficulty, rep.Rounds,
		rep.Questions, rep.Evaluations, rep.Feedbacks, rep.Summary, transcript,
		rep.StartedAt, rep.CompletedAt,
	)
	if err != nil {
		span.RecordError(err)
		if err, ok := handlePgError(err); ok {
			return err
		}

		return fmt.Errorf("inserting into interview_reports: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (r *Repository) Latest(ctx context.Context, sessionID string) (report.Report, error) {
	tracer := otel.GetTracerProvider()
	ctx, span := tracer.Tracer("").Start(ctx, "get_latest_interview_report_sql")
	defer span.End()

	row := r.db.QueryRow(ctx,
		`SELECT id, session_id, category, difficulty, rounds, questions, evaluations, feedbacks, summary, transcript, started_at, completed_at
			FROM interview_reports WHERE session_id = $1
			ORDER BY completed_at DESC LIMIT 1;`, sessionID)

	var (
		rep        report.Report
		transcript []byte
	)
	err := row.Scan(&rep.ID, &rep.SessionID, &rep.Category, &rep.Difficulty, &rep.Rounds,
		&rep.Questions, &rep.Evaluations, &rep.Feedbacks, &rep.Summary, &transcript,
		&rep.StartedAt, &rep.CompletedAt)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, pgx.ErrNoRows) {
			return report.Report{}, serviceerr.ErrNotFound
		}

		return report.Report{}, fmt.Errorf("scanning rows: %w", err)
	}

	if err := json.Unmarshal(transcript, &rep.Transcript); err != nil {
		span.RecordError(err)
		return report.Report{}, fmt.Errorf("unmarshalling transcript: %w", err)
	}

	return rep, nil
}

func handlePgError(err error) (error, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return serviceerr.ErrConflict, true
	}

	return err, false
}
