package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 7, 14, 10, 30, 0, 0, time.UTC)

func openTestLedger(t *testing.T, path string, opts ...Option) *Ledger {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return Open(path, zerolog.Nop(), opts...)
}

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	l := openTestLedger(t, filepath.Join(t.TempDir(), "stats.json"))

	doc := l.Snapshot()
	assert.Equal(t, 0, doc.TotalUsers)
	assert.Equal(t, 0, doc.CompletedTests)
	for _, level := range model.Levels() {
		v, ok := doc.TestResults[level.Label()]
		assert.True(t, ok)
		assert.Equal(t, 0, v)
	}
}

func TestOpen_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	l := openTestLedger(t, path)
	assert.Equal(t, 0, l.Snapshot().TotalUsers)
}

func TestRecordStart_CountsDistinctUsers(t *testing.T) {
	l := openTestLedger(t, filepath.Join(t.TempDir(), "stats.json"))
	u := model.User{ID: 1, Username: "ivan", FirstName: "Ivan"}

	l.RecordStart(u)
	l.RecordStart(u)
	l.RecordStart(model.User{ID: 2})

	doc := l.Snapshot()
	assert.Equal(t, 2, doc.TotalUsers)
	assert.Equal(t, 0, doc.CompletedTests)
	assert.Equal(t, "ivan", doc.Users["1"].Username)
	assert.Nil(t, doc.Users["1"].TestResult)
}

func TestRecordCompletion(t *testing.T) {
	l := openTestLedger(t, filepath.Join(t.TempDir(), "stats.json"))
	u := model.User{ID: 5, Username: "petr", FirstName: "Petr", LastName: "Ivanov"}

	l.RecordStart(u)
	l.RecordCompletion(u, model.LevelLow, 15)

	doc := l.Snapshot()
	assert.Equal(t, 1, doc.TotalUsers)
	assert.Equal(t, 1, doc.CompletedTests)
	assert.Equal(t, 1, doc.TestResults[model.LevelLowLabel])
	assert.Equal(t, 0, doc.TestResults[model.LevelHighLabel])

	rec, ok := l.UserResult(5)
	require.True(t, ok)
	require.NotNil(t, rec.TestResult)
	assert.Equal(t, model.LevelLowLabel, rec.TestResult.Level)
	assert.Equal(t, 15, rec.TestResult.Score)
	assert.Equal(t, fixedNow.Format(time.RFC3339), rec.TestDate)
	assert.Equal(t, fixedNow.Format(time.RFC3339), doc.LastUpdated)
}

func TestLedger_PersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "stats.json")
	l := openTestLedger(t, path)

	l.RecordStart(model.User{ID: 1, Username: "a"})
	l.RecordCompletion(model.User{ID: 1, Username: "a"}, model.LevelHigh, 27)
	l.RecordStart(model.User{ID: 2, Username: "b"})
	l.RecordCompletion(model.User{ID: 2, Username: "b"}, model.LevelMedium, 18)

	reloaded := openTestLedger(t, path)
	assert.Equal(t, l.Snapshot(), reloaded.Snapshot())
}

func TestLedger_FileLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	l := openTestLedger(t, path)
	l.RecordCompletion(model.User{ID: 9, Username: "x", FirstName: "X"}, model.LevelMedium, 17)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"total_users", "completed_tests", "test_results", "users", "last_updated"} {
		assert.Contains(t, doc, key)
	}
	users := doc["users"].(map[string]any)
	user := users["9"].(map[string]any)
	assert.Equal(t, "x", user["username"])
	assert.Equal(t, "X", user["first_name"])
	result := user["test_result"].(map[string]any)
	assert.Equal(t, model.LevelMediumLabel, result["level"])
	assert.EqualValues(t, 17, result["score"])
}

func TestLedger_PersistFailureKeepsMemoryState(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	var failures int
	l := openTestLedger(t, filepath.Join(blocker, "stats.json"), WithPersistErrorHook(func(error) { failures++ }))

	l.RecordCompletion(model.User{ID: 1}, model.LevelLow, 3)

	assert.Equal(t, 1, failures)
	assert.Equal(t, 1, l.Snapshot().CompletedTests)
}

func TestSnapshot_IsIsolated(t *testing.T) {
	l := openTestLedger(t, filepath.Join(t.TempDir(), "stats.json"))
	l.RecordCompletion(model.User{ID: 1}, model.LevelLow, 3)

	doc := l.Snapshot()
	doc.TestResults[model.LevelLowLabel] = 100
	doc.Users["1"].TestResult.Score = 99

	fresh := l.Snapshot()
	assert.Equal(t, 1, fresh.TestResults[model.LevelLowLabel])
	assert.Equal(t, 3, fresh.Users["1"].TestResult.Score)
}

func TestFormatSummary(t *testing.T) {
	doc := NewDocument()
	doc.TotalUsers = 4
	doc.CompletedTests = 2
	doc.TestResults[model.LevelHighLabel] = 2

	out := FormatSummary(doc)
	assert.Contains(t, out, "Всего пользователей: 4")
	assert.Contains(t, out, "Завершённых тестов: 2")
	assert.Contains(t, out, model.LevelHighLabel+": 2 (100.0%)")
}

func TestFormatUser(t *testing.T) {
	out := FormatUser(3, UserRecord{Username: "ivan"})
	assert.Contains(t, out, "@ivan")
	assert.Contains(t, out, "не завершён")

	out = FormatUser(3, UserRecord{TestDate: "2025-01-01T00:00:00Z", TestResult: &TestResult{Level: model.LevelLowLabel, Score: 10}})
	assert.Contains(t, out, "10 баллов")
}
