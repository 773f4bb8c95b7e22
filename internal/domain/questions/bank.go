package questions

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultBank []byte

// Число фаз и вопросов в фазе фиксировано методикой
const (
	PhaseCount        = 3
	QuestionsPerPhase = 10
)

var ErrUnknownPhase = errors.New("unknown phase")

// Thresholds пороги уровней фазы, границы включающие
type Thresholds struct {
	Medium int `yaml:"medium"`
	High   int `yaml:"high"`
}

// Phase фаза методики с вопросами и ключом
type Phase struct {
	Name           string            `yaml:"name"`
	Title          string            `yaml:"title"`
	Thresholds     Thresholds        `yaml:"thresholds"`
	Questions      []string          `yaml:"questions"`
	Key            []bool            `yaml:"key"`
	Interpretation map[string]string `yaml:"interpretation"`
}

// Interpret текст интерпретации для уровня
func (p Phase) Interpret(level model.Level) string {
	return p.Interpretation[level.Key()]
}

// Classify уровень фазы по баллу
func (p Phase) Classify(score int) model.Level {
	return model.Classify(float64(score), float64(p.Thresholds.Medium), float64(p.Thresholds.High))
}

// Bank неизменяемый банк вопросов, загружается один раз при старте
type Bank struct {
	phases []Phase
}

// Load загружает встроенный банк вопросов
func Load() (*Bank, error) {
	return Parse(defaultBank)
}

// Parse разбирает и проверяет банк вопросов из YAML
func Parse(data []byte) (*Bank, error) {
	const op = "questions.Parse"

	var doc struct {
		Phases []Phase `yaml:"phases"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to decode yaml: %w", op, err)
	}

	if len(doc.Phases) != PhaseCount {
		return nil, fmt.Errorf("%s: expected %d phases, got %d", op, PhaseCount, len(doc.Phases))
	}
	for i, p := range doc.Phases {
		if len(p.Questions) != QuestionsPerPhase {
			return nil, fmt.Errorf("%s: phase %d: expected %d questions, got %d", op, i, QuestionsPerPhase, len(p.Questions))
		}
		if len(p.Key) != len(p.Questions) {
			return nil, fmt.Errorf("%s: phase %d: key length %d != question count %d", op, i, len(p.Key), len(p.Questions))
		}
		if p.Thresholds.Medium >= p.Thresholds.High {
			return nil, fmt.Errorf("%s: phase %d: medium threshold must be below high", op, i)
		}
		for _, level := range model.Levels() {
			if p.Interpretation[level.Key()] == "" {
				return nil, fmt.Errorf("%s: phase %d: missing %s interpretation", op, i, level.Key())
			}
		}
		if p.Title == "" {
			doc.Phases[i].Title = p.Name
		}
	}

	return &Bank{phases: doc.Phases}, nil
}

// Len количество фаз
func (b *Bank) Len() int {
	return len(b.phases)
}

// Phase возвращает фазу по индексу. Вызывающий обязан проверить диапазон.
func (b *Bank) Phase(i int) Phase {
	return b.phases[i]
}

// Lookup возвращает фазу с проверкой индекса
func (b *Bank) Lookup(i int) (Phase, error) {
	if i < 0 || i >= len(b.phases) {
		return Phase{}, fmt.Errorf("%w: %d", ErrUnknownPhase, i)
	}
	return b.phases[i], nil
}

// Phases копия списка фаз
func (b *Bank) Phases() []Phase {
	out := make([]Phase, len(b.phases))
	copy(out, b.phases)
	return out
}

// QuestionCount общее количество вопросов полного теста
func (b *Bank) QuestionCount() int {
	n := 0
	for _, p := range b.phases {
		n += len(p.Questions)
	}
	return n
}
