package flow

import (
	"context"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
)

// Ledger статистика прохождений
type Ledger interface {
	RecordStart(u model.User)
	RecordCompletion(u model.User, level model.Level, totalScore int)
}

// CertificateRenderer генерирует PNG грамоты
type CertificateRenderer interface {
	Render(name string, totalScore int, level string, completedPhases int) ([]byte, error)
}

// Archive архив завершённых тестов
type Archive interface {
	Archive(ctx context.Context, userID int64, fullName string, fullTest bool, res model.ScoreResult) (string, error)
}

// Texts каталог текстов бота
type Texts interface {
	GetMessageByKey(key string) string
}

// Membership результат проверки подписки на канал
type Membership struct {
	Subscribed bool
	Status     string
}

// MembershipChecker проверяет подписку пользователя на канал
type MembershipChecker interface {
	Check(ctx context.Context, userID int64) (Membership, error)
}

// Исходы проверки подписки
const (
	MembershipMember    = "member"
	MembershipNotMember = "not_member"
	MembershipError     = "error"
	MembershipBypassed  = "bypassed"
)

// Observer счётчики событий диалога
type Observer interface {
	TestStarted()
	SelectionMade(fullTest bool)
	TestCompleted(level model.Level)
	CertificateRendered(err error)
	MembershipChecked(outcome string)
}

type nopObserver struct{}

func (nopObserver) TestStarted()              {}
func (nopObserver) SelectionMade(bool)        {}
func (nopObserver) TestCompleted(model.Level) {}
func (nopObserver) CertificateRendered(error) {}
func (nopObserver) MembershipChecked(string)  {}
