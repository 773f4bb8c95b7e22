package scoring

import (
	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/IT-Nick/burncheckbot/internal/domain/questions"
)

// Пороги общего уровня по сумме баллов всех трёх фаз (шкала 0–30)
const (
	TotalMediumThreshold = 15
	TotalHighThreshold   = 20
)

// Пороги общего уровня по среднему баллу пройденных фаз (шкала 0–10)
const (
	AverageMediumThreshold = 3
	AverageHighThreshold   = 6
)

// Score считает баллы по фазам, общий балл и общий уровень.
// Фаза считается пройденной, только если ответов ровно столько, сколько вопросов.
func Score(bank *questions.Bank, s *model.Session) model.ScoreResult {
	var res model.ScoreResult

	for i := 0; i < bank.Len(); i++ {
		phase := bank.Phase(i)
		ps := model.PhaseScore{
			Phase: i,
			Name:  phase.Name,
			Max:   len(phase.Questions),
		}

		answers := s.Answers[i]
		if len(answers) == len(phase.Questions) {
			ps.Completed = true
			for q, answer := range answers {
				if answer == phase.Key[q] {
					ps.Score++
				}
			}
			ps.Level = phase.Classify(ps.Score)
			res.Total += ps.Score
			res.Completed++
		}

		res.Phases = append(res.Phases, ps)
	}

	res.AllPhases = res.Completed == bank.Len()
	if res.Completed == 0 {
		return res
	}

	res.HasOverall = true
	res.Average = float64(res.Total) / float64(res.Completed)
	if res.AllPhases {
		res.Overall = model.Classify(float64(res.Total), TotalMediumThreshold, TotalHighThreshold)
	} else {
		res.Overall = model.Classify(res.Average, AverageMediumThreshold, AverageHighThreshold)
	}

	return res
}
