package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/google/uuid"
)

var ErrHistoryDisabled = errors.New("result history is not configured")

const DefaultHistoryLimit = 10

// ResultRepository хранилище архива результатов
type ResultRepository interface {
	SaveResult(ctx context.Context, rec model.ResultRecord) (string, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]model.ResultRecord, error)
}

// ResultService архивирует завершённые тесты. Без репозитория работает как заглушка.
type ResultService struct {
	repo ResultRepository
	now  func() time.Time
}

// NewResultService repo может быть nil, тогда архив отключён
func NewResultService(repo ResultRepository) *ResultService {
	return &ResultService{repo: repo, now: time.Now}
}

// Enabled настроен ли архив
func (s *ResultService) Enabled() bool {
	return s != nil && s.repo != nil
}

// Archive сохраняет результат завершённого теста
func (s *ResultService) Archive(ctx context.Context, userID int64, fullName string, fullTest bool, res model.ScoreResult) (string, error) {
	if !s.Enabled() {
		return "", nil
	}

	scores := make([]int, 0, len(res.Phases))
	for _, p := range res.Phases {
		if p.Completed {
			scores = append(scores, p.Score)
		} else {
			scores = append(scores, -1)
		}
	}

	rec := model.ResultRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		FullName:    fullName,
		FullTest:    fullTest,
		TotalScore:  res.Total,
		Completed:   res.Completed,
		Level:       res.Overall.Label(),
		PhaseScores: scores,
		CreatedAt:   s.now().UTC(),
	}

	id, err := s.repo.SaveResult(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("failed to archive result: %w", err)
	}
	return id, nil
}

// History последние результаты пользователя
func (s *ResultService) History(ctx context.Context, userID int64, limit int) ([]model.ResultRecord, error) {
	if !s.Enabled() {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	records, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return records, nil
}

// FormatHistory текст для администратора
func FormatHistory(userID int64, records []model.ResultRecord) string {
	if len(records) == 0 {
		return fmt.Sprintf("У пользователя %d нет сохранённых результатов.", userID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "История пользователя %d:\n", userID)
	for _, rec := range records {
		scope := "фаза"
		if rec.FullTest {
			scope = "полный тест"
		}
		fmt.Fprintf(&b, "\n%s  %s (%s)\n%s, %d баллов, фаз: %d",
			rec.CreatedAt.Format("02.01.2006 15:04"), rec.FullName, scope, rec.Level, rec.TotalScore, rec.Completed)
	}
	return b.String()
}
