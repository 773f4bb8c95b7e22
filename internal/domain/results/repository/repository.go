package repository

import (
	"context"
	"fmt"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResultRepository архив завершённых тестов в PostgreSQL
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository создает новый экземпляр ResultRepository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{db: db}
}

// EnsureSchema создаёт таблицу test_results, если её нет
func (r *ResultRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS test_results (
			id               UUID PRIMARY KEY,
			user_id          BIGINT NOT NULL,
			full_name        TEXT NOT NULL DEFAULT '',
			full_test        BOOLEAN NOT NULL,
			total_score      INTEGER NOT NULL,
			completed_phases INTEGER NOT NULL,
			level            TEXT NOT NULL,
			phase_scores     INTEGER[] NOT NULL,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to create test_results table: %w", err)
	}

	_, err = r.db.Exec(ctx, "CREATE INDEX IF NOT EXISTS test_results_user_id_idx ON test_results (user_id, created_at DESC)")
	if err != nil {
		return fmt.Errorf("failed to create test_results index: %w", err)
	}
	return nil
}

// SaveResult сохраняет запись и возвращает её идентификатор
func (r *ResultRepository) SaveResult(ctx context.Context, rec model.ResultRecord) (string, error) {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	scores := make([]int32, len(rec.PhaseScores))
	for i, s := range rec.PhaseScores {
		scores[i] = int32(s)
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO test_results (id, user_id, full_name, full_test, total_score, completed_phases, level, phase_scores, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, id, rec.UserID, rec.FullName, rec.FullTest, rec.TotalScore, rec.Completed, rec.Level, scores, rec.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("failed to save test result: %w", err)
	}
	return id, nil
}

// ListByUser последние результаты пользователя, новые первыми
func (r *ResultRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]model.ResultRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id::text, user_id, full_name, full_test, total_score, completed_phases, level, phase_scores, created_at
		FROM test_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query test results: %w", err)
	}
	defer rows.Close()

	var records []model.ResultRecord
	for rows.Next() {
		var (
			rec    model.ResultRecord
			scores []int32
		)
		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.FullName,
			&rec.FullTest,
			&rec.TotalScore,
			&rec.Completed,
			&rec.Level,
			&scores,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan test result: %w", err)
		}
		rec.PhaseScores = make([]int, len(scores))
		for i, s := range scores {
			rec.PhaseScores[i] = int(s)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}

	return records, nil
}
