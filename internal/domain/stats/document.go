package stats

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
)

// TestResult последний результат пользователя
type TestResult struct {
	Level string `json:"level"`
	Score int    `json:"score"`
}

// UserRecord последние известные данные пользователя
type UserRecord struct {
	Username   string      `json:"username"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	TestDate   string      `json:"test_date,omitempty"`
	TestResult *TestResult `json:"test_result,omitempty"`
}

// Document содержимое файла статистики, читается и пишется целиком
type Document struct {
	TotalUsers     int                   `json:"total_users"`
	CompletedTests int                   `json:"completed_tests"`
	TestResults    map[string]int        `json:"test_results"`
	Users          map[string]UserRecord `json:"users"`
	LastUpdated    string                `json:"last_updated"`
}

// NewDocument пустая статистика со всеми уровнями по нулям
func NewDocument() Document {
	doc := Document{
		TestResults: make(map[string]int),
		Users:       make(map[string]UserRecord),
	}
	doc.normalize()
	return doc
}

func (d *Document) normalize() {
	if d.TestResults == nil {
		d.TestResults = make(map[string]int)
	}
	if d.Users == nil {
		d.Users = make(map[string]UserRecord)
	}
	for _, level := range model.Levels() {
		if _, ok := d.TestResults[level.Label()]; !ok {
			d.TestResults[level.Label()] = 0
		}
	}
}

func (d Document) clone() Document {
	cp := d
	cp.TestResults = make(map[string]int, len(d.TestResults))
	for k, v := range d.TestResults {
		cp.TestResults[k] = v
	}
	cp.Users = make(map[string]UserRecord, len(d.Users))
	for k, v := range d.Users {
		if v.TestResult != nil {
			r := *v.TestResult
			v.TestResult = &r
		}
		cp.Users[k] = v
	}
	return cp
}

// ReadFile читает файл статистики
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	doc := NewDocument()
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	doc.normalize()
	return doc, nil
}
