package model

// Level уровень выгорания (полоса шкалы), упорядочен по возрастанию.
type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
)

// Подписи уровней. Используются в грамоте и как ключи test_results в статистике.
const (
	LevelLowLabel    = "Маленький Пиздец"
	LevelMediumLabel = "Средний Пиздец"
	LevelHighLabel   = "Большой Пиздец"
)

// Levels возвращает все уровни по порядку.
func Levels() []Level {
	return []Level{LevelLow, LevelMedium, LevelHigh}
}

// Label возвращает подпись уровня для грамоты и статистики.
func (l Level) Label() string {
	switch l {
	case LevelMedium:
		return LevelMediumLabel
	case LevelHigh:
		return LevelHighLabel
	default:
		return LevelLowLabel
	}
}

// Key короткий ключ уровня, совпадает с ключами интерпретаций в банке вопросов.
func (l Level) Key() string {
	switch l {
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "low"
	}
}

func (l Level) String() string {
	return l.Key()
}

// Classify относит балл к уровню по двум включающим порогам.
func Classify(score float64, medium, high float64) Level {
	switch {
	case score <= medium:
		return LevelLow
	case score <= high:
		return LevelMedium
	default:
		return LevelHigh
	}
}
