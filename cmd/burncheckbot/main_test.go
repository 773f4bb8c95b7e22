package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statsFixture = `{
  "total_users": 3,
  "completed_tests": 2,
  "test_results": {"Маленький Пиздец": 1, "Большой Пиздец": 1},
  "users": {},
  "last_updated": "2025-03-09T10:00:00"
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot_stats.json")
	require.NoError(t, os.WriteFile(path, []byte(statsFixture), 0o644))

	out, err := execute(t, "stats", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Всего пользователей: 3")
	assert.Contains(t, out, "Средний Пиздец: 0")

	out, err = execute(t, "stats", "--file", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"completed_tests": 2`)
}

func TestStatsCommandMissingFile(t *testing.T) {
	_, err := execute(t, "stats", "--file", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestFontsCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "certificate:\n  fonts:\n    - path: " + filepath.Join(dir, "missing.ttf") + "\n      description: Тестовый шрифт\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := execute(t, "fonts", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "❌ Тестовый шрифт")
	assert.Contains(t, out, "встроенный")
}
