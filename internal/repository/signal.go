package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/paper_signal_service/internal/models"
	"github.com/shenikar/paper_signal_service/internal/service"
)

const signalColumns = `
	id,
	toilet_id,
	latitude,
	longitude,
	message,
	requester_id,
	accepter_id,
	created_at,
	expires_at,
	canceled_at`

type SignalRepository struct {
	db *pgxpool.Pool
}

func NewSignalRepository(db *pgxpool.Pool) service.SignalRepository {
	return &SignalRepository{
		db: db,
	}
}

func scanSignal(row pgx.Row) (*models.Signal, error) {
	signal := &models.Signal{}
	err := row.Scan(
		&signal.ID,
		&signal.ToiletID,
		&signal.Latitude,
		&signal.Longitude,
		&signal.Message,
		&signal.RequesterID,
		&signal.AccepterID,
		&signal.CreatedAt,
		&signal.ExpiresAt,
		&signal.CanceledAt,
	)
	if err != nil {
		return nil, err
	}
	return signal, nil
}

// CreateExclusive создает сигнал, если у автора нет активного.
// Advisory-lock на автора сериализует конкурентные создания внутри транзакции.
func (r *SignalRepository) CreateExclusive(ctx context.Context, signal *models.Signal, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, signal.RequesterID); err != nil {
		return fmt.Errorf("failed to lock requester: %w", err)
	}

	var exists bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM signals
			WHERE requester_id = $1 AND canceled_at IS NULL AND expires_at > $2
		);
	`, signal.RequesterID, now).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check active signals: %w", err)
	}
	if exists {
		return service.ErrAlreadyActive
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO signals (id, toilet_id, latitude, longitude, message, requester_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`,
		signal.ID,
		signal.ToiletID,
		signal.Latitude,
		signal.Longitude,
		signal.Message,
		signal.RequesterID,
		signal.CreatedAt,
		signal.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create signal: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit signal: %w", err)
	}
	return nil
}

// GetByID возвращает сигнал по UUID, включая отмененные и истекшие
func (r *SignalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Signal, error) {
	query := `SELECT ` + signalColumns + ` FROM signals WHERE id = $1;`
	signal, err := scanSignal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("signal with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get signal by id: %w", err)
	}
	return signal, nil
}

// updateReturning выполняет условное обновление, (nil, nil) если условие не выполнено
func (r *SignalRepository) updateReturning(ctx context.Context, op, query string, args ...any) (*models.Signal, error) {
	signal, err := scanSignal(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to %s signal: %w", op, err)
	}
	return signal, nil
}

// Accept атомарно назначает помощника свободному живому сигналу
func (r *SignalRepository) Accept(ctx context.Context, id uuid.UUID, accepterID string, now, expiresAt time.Time) (*models.Signal, error) {
	query := `
		UPDATE signals SET
			accepter_id = $2,
			expires_at = $4
		WHERE id = $1
			AND accepter_id IS NULL
			AND canceled_at IS NULL
			AND expires_at > $3
			AND requester_id <> $2
		RETURNING ` + signalColumns + `;
	`
	return r.updateReturning(ctx, "accept", query, id, accepterID, now, expiresAt)
}

// ReleaseByAccepter снимает помощника, только если это он сам и сигнал жив
func (r *SignalRepository) ReleaseByAccepter(ctx context.Context, id uuid.UUID, accepterID string, now, expiresAt time.Time) (*models.Signal, error) {
	query := `
		UPDATE signals SET
			accepter_id = NULL,
			expires_at = $4
		WHERE id = $1
			AND accepter_id = $2
			AND canceled_at IS NULL
			AND expires_at > $3
		RETURNING ` + signalColumns + `;
	`
	return r.updateReturning(ctx, "release", query, id, accepterID, now, expiresAt)
}

// ReleaseByParticipant снимает помощника по запросу автора или самого помощника
func (r *SignalRepository) ReleaseByParticipant(ctx context.Context, id uuid.UUID, participantID string, now, expiresAt time.Time) (*models.Signal, error) {
	query := `
		UPDATE signals SET
			accepter_id = NULL,
			expires_at = $4
		WHERE id = $1
			AND accepter_id IS NOT NULL
			AND (accepter_id = $2 OR requester_id = $2)
			AND canceled_at IS NULL
			AND expires_at > $3
		RETURNING ` + signalColumns + `;
	`
	return r.updateReturning(ctx, "cancel acceptance of", query, id, participantID, now, expiresAt)
}

// Cancel помечает сигнал отмененным (canceled_at), история сохраняется до очистки
func (r *SignalRepository) Cancel(ctx context.Context, id uuid.UUID, requesterID string, now time.Time) (*models.Signal, error) {
	query := `
		UPDATE signals SET
			canceled_at = $3,
			accepter_id = NULL
		WHERE id = $1
			AND requester_id = $2
			AND canceled_at IS NULL
		RETURNING ` + signalColumns + `;
	`
	return r.updateReturning(ctx, "cancel", query, id, requesterID, now)
}

// ListActive возвращает живые сигналы для набора туалетов, новые первыми
func (r *SignalRepository) ListActive(ctx context.Context, toiletIDs []string, now time.Time) ([]*models.Signal, error) {
	query := `
		SELECT ` + signalColumns + `
		FROM signals
		WHERE toilet_id = ANY($1)
			AND canceled_at IS NULL
			AND expires_at > $2
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, toiletIDs, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list active signals: %w", err)
	}
	defer rows.Close()

	signals := make([]*models.Signal, 0)
	for rows.Next() {
		signal, err := scanSignal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan signal row: %w", err)
		}
		signals = append(signals, signal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return signals, nil
}

// DeleteRetired удаляет сигналы, истекшие или отмененные раньше before
func (r *SignalRepository) DeleteRetired(ctx context.Context, before time.Time) (int64, error) {
	query := `
		DELETE FROM signals
		WHERE expires_at < $1
			OR canceled_at < $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete retired signals: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
