package model

// PhaseScore результат одной фазы
type PhaseScore struct {
	Phase     int
	Name      string
	Completed bool
	Score     int
	Max       int
	Level     Level
}

// ScoreResult производный результат теста, не хранится
type ScoreResult struct {
	Phases     []PhaseScore
	Total      int
	Completed  int
	AllPhases  bool
	Average    float64
	Overall    Level
	HasOverall bool
}

// MaxTotal максимальный балл по пройденным фазам
func (r ScoreResult) MaxTotal() int {
	max := 0
	for _, p := range r.Phases {
		if p.Completed {
			max += p.Max
		}
	}
	return max
}
