package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/rs/zerolog"
)

// Ledger агрегированная статистика использования.
// Все изменения проходят под одним мьютексом и сразу перезаписывают файл целиком.
// Ошибка записи логируется, состояние в памяти остаётся главным.
type Ledger struct {
	path string
	log  zerolog.Logger
	now  func() time.Time

	onPersistError func(error)

	mu  sync.Mutex
	doc Document
}

// Option настройка Ledger
type Option func(*Ledger)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithPersistErrorHook вызывается при каждой неудачной записи файла
func WithPersistErrorHook(fn func(error)) Option {
	return func(l *Ledger) { l.onPersistError = fn }
}

// Open загружает статистику из файла. Отсутствующий или битый файл даёт пустую статистику.
func Open(path string, log zerolog.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		path: path,
		log:  log,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	doc, err := ReadFile(path)
	switch {
	case err == nil:
		l.log.Info().Str("path", path).Int("users", doc.TotalUsers).Int("completed", doc.CompletedTests).Msg("stats loaded")
	case errors.Is(err, fs.ErrNotExist):
		l.log.Info().Str("path", path).Msg("stats file not found, starting empty")
		doc = NewDocument()
	default:
		l.log.Warn().Err(err).Str("path", path).Msg("stats file unreadable, starting empty")
		doc = NewDocument()
	}
	l.doc = doc

	return l
}

// RecordStart отмечает начало теста: новый пользователь увеличивает total_users
func (l *Ledger) RecordStart(u model.User) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.touchUser(u)
	l.persistLocked()
}

// RecordCompletion учитывает завершённый тест и последний результат пользователя
func (l *Ledger) RecordCompletion(u model.User, level model.Level, totalScore int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.touchUser(u)
	rec.TestDate = l.now().Format(time.RFC3339)
	rec.TestResult = &TestResult{Level: level.Label(), Score: totalScore}
	l.doc.Users[userKey(u.ID)] = rec

	l.doc.CompletedTests++
	l.doc.TestResults[level.Label()]++
	l.persistLocked()
}

func (l *Ledger) touchUser(u model.User) UserRecord {
	key := userKey(u.ID)
	rec, ok := l.doc.Users[key]
	if !ok {
		l.doc.TotalUsers++
	}
	rec.Username = u.Username
	rec.FirstName = u.FirstName
	rec.LastName = u.LastName
	l.doc.Users[key] = rec
	return rec
}

func (l *Ledger) persistLocked() {
	l.doc.LastUpdated = l.now().Format(time.RFC3339)
	if err := l.write(l.doc); err != nil {
		l.log.Error().Err(err).Str("path", l.path).Msg("failed to persist stats")
		if l.onPersistError != nil {
			l.onPersistError(err)
		}
	}
}

func (l *Ledger) write(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if dir := filepath.Dir(l.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create dir %s: %w", dir, err)
		}
	}
	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, l.path); err != nil {
		return fmt.Errorf("failed to replace file %s: %w", l.path, err)
	}
	return nil
}

// Snapshot копия текущей статистики
func (l *Ledger) Snapshot() Document {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.doc.clone()
}

// Export статистика в том же JSON-виде, что и файл
func (l *Ledger) Export() ([]byte, error) {
	doc := l.Snapshot()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return data, nil
}

// UserResult последние данные пользователя по id
func (l *Ledger) UserResult(userID int64) (UserRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.doc.Users[userKey(userID)]
	if ok && rec.TestResult != nil {
		r := *rec.TestResult
		rec.TestResult = &r
	}
	return rec, ok
}

// Summary человекочитаемая сводка
func (l *Ledger) Summary() string {
	return FormatSummary(l.Snapshot())
}

// FormatSummary сводка по документу статистики
func FormatSummary(doc Document) string {
	var b strings.Builder
	b.WriteString("📊 Статистика бота\n\n")
	fmt.Fprintf(&b, "👥 Всего пользователей: %d\n", doc.TotalUsers)
	fmt.Fprintf(&b, "✅ Завершённых тестов: %d\n\n", doc.CompletedTests)
	b.WriteString("📈 Результаты:\n")
	for _, level := range model.Levels() {
		count := doc.TestResults[level.Label()]
		pct := 0.0
		if doc.CompletedTests > 0 {
			pct = float64(count) * 100 / float64(doc.CompletedTests)
		}
		fmt.Fprintf(&b, "• %s: %d (%.1f%%)\n", level.Label(), count, pct)
	}

	var extra []string
	for label := range doc.TestResults {
		if !isKnownLabel(label) {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	for _, label := range extra {
		fmt.Fprintf(&b, "• %s: %d\n", label, doc.TestResults[label])
	}

	if doc.LastUpdated != "" {
		fmt.Fprintf(&b, "\n🕐 Обновлено: %s", doc.LastUpdated)
	}
	return b.String()
}

// FormatUser описание последнего результата пользователя
func FormatUser(userID int64, rec UserRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👤 Пользователь %d\n", userID)
	if rec.Username != "" {
		fmt.Fprintf(&b, "Username: @%s\n", rec.Username)
	}
	name := strings.TrimSpace(rec.FirstName + " " + rec.LastName)
	if name != "" {
		fmt.Fprintf(&b, "Имя: %s\n", name)
	}
	if rec.TestResult == nil {
		b.WriteString("Тест ещё не завершён")
		return b.String()
	}
	fmt.Fprintf(&b, "Дата теста: %s\n", rec.TestDate)
	fmt.Fprintf(&b, "Результат: %s (%d баллов)", rec.TestResult.Level, rec.TestResult.Score)
	return b.String()
}

func isKnownLabel(label string) bool {
	for _, level := range model.Levels() {
		if level.Label() == label {
			return true
		}
	}
	return false
}

func userKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
