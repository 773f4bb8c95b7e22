package scoring

import (
	"testing"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/IT-Nick/burncheckbot/internal/domain/questions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadBank(t *testing.T) *questions.Bank {
	t.Helper()
	bank, err := questions.Load()
	require.NoError(t, err)
	return bank
}

// answerPhase заполняет фазу так, чтобы совпало ровно matches ответов с ключом
func answerPhase(s *model.Session, phase questions.Phase, idx, matches int) {
	s.Answers[idx] = make(map[int]bool)
	for q, expected := range phase.Key {
		if q < matches {
			s.Answers[idx][q] = expected
		} else {
			s.Answers[idx][q] = !expected
		}
	}
}

func TestScore_FullTest(t *testing.T) {
	bank := loadBank(t)
	s := model.NewSession(1, time.Now())
	answerPhase(s, bank.Phase(0), 0, 10)
	answerPhase(s, bank.Phase(1), 1, 0)
	answerPhase(s, bank.Phase(2), 2, 5)

	res := Score(bank, s)

	require.Len(t, res.Phases, 3)
	assert.Equal(t, 10, res.Phases[0].Score)
	assert.Equal(t, 0, res.Phases[1].Score)
	assert.Equal(t, 5, res.Phases[2].Score)
	assert.Equal(t, 15, res.Total)
	assert.Equal(t, 3, res.Completed)
	assert.True(t, res.AllPhases)
	assert.True(t, res.HasOverall)
	assert.Equal(t, model.LevelLow, res.Overall)
	assert.Equal(t, model.LevelHigh, res.Phases[0].Level)
	assert.Equal(t, model.LevelLow, res.Phases[1].Level)
	assert.Equal(t, model.LevelMedium, res.Phases[2].Level)
}

func TestScore_TotalEqualsSumOfPhases(t *testing.T) {
	bank := loadBank(t)
	for a := 0; a <= 10; a += 5 {
		for b := 0; b <= 10; b += 3 {
			for c := 0; c <= 10; c += 2 {
				s := model.NewSession(1, time.Now())
				answerPhase(s, bank.Phase(0), 0, a)
				answerPhase(s, bank.Phase(1), 1, b)
				answerPhase(s, bank.Phase(2), 2, c)

				res := Score(bank, s)
				sum := 0
				for _, p := range res.Phases {
					sum += p.Score
				}
				assert.Equal(t, sum, res.Total)
				assert.GreaterOrEqual(t, res.Total, 0)
				assert.LessOrEqual(t, res.Total, 30)
			}
		}
	}
}

func TestScore_OverallBoundaries(t *testing.T) {
	bank := loadBank(t)
	cases := []struct {
		name    string
		a, b, c int
		want    model.Level
	}{
		{"15 is low", 5, 5, 5, model.LevelLow},
		{"16 is medium", 6, 5, 5, model.LevelMedium},
		{"20 is medium", 10, 5, 5, model.LevelMedium},
		{"21 is high", 10, 6, 5, model.LevelHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := model.NewSession(1, time.Now())
			answerPhase(s, bank.Phase(0), 0, tc.a)
			answerPhase(s, bank.Phase(1), 1, tc.b)
			answerPhase(s, bank.Phase(2), 2, tc.c)
			assert.Equal(t, tc.want, Score(bank, s).Overall)
		})
	}
}

func TestScore_IncompletePhaseNotScored(t *testing.T) {
	bank := loadBank(t)
	s := model.NewSession(1, time.Now())
	answerPhase(s, bank.Phase(1), 1, 7)
	s.Answers[2] = map[int]bool{0: bank.Phase(2).Key[0]}

	res := Score(bank, s)

	assert.False(t, res.Phases[0].Completed)
	assert.Equal(t, 0, res.Phases[0].Score)
	assert.True(t, res.Phases[1].Completed)
	assert.False(t, res.Phases[2].Completed)
	assert.Equal(t, 0, res.Phases[2].Score)
	assert.Equal(t, 1, res.Completed)
	assert.Equal(t, 7, res.Total)
	assert.False(t, res.AllPhases)
	assert.Equal(t, model.LevelHigh, res.Overall)
}

func TestScore_AveragesPartialRun(t *testing.T) {
	bank := loadBank(t)
	s := model.NewSession(1, time.Now())
	answerPhase(s, bank.Phase(0), 0, 3)
	answerPhase(s, bank.Phase(2), 2, 5)

	res := Score(bank, s)

	assert.Equal(t, 8, res.Total)
	assert.Equal(t, 20, res.MaxTotal())
	assert.InDelta(t, 4.0, res.Average, 0.0001)
	assert.Equal(t, model.LevelMedium, res.Overall)
}

func TestScore_NoCompletedPhases(t *testing.T) {
	bank := loadBank(t)
	res := Score(bank, model.NewSession(1, time.Now()))

	assert.Equal(t, 0, res.Completed)
	assert.False(t, res.HasOverall)
	for _, p := range res.Phases {
		assert.False(t, p.Completed)
	}
}

func TestScore_OrderIndependent(t *testing.T) {
	bank := loadBank(t)
	phase := bank.Phase(0)

	forward := model.NewSession(1, time.Now())
	forward.Answers[0] = map[int]bool{}
	for q := 0; q < len(phase.Key); q++ {
		forward.Answers[0][q] = q%2 == 0
	}

	backward := model.NewSession(2, time.Now())
	backward.Answers[0] = map[int]bool{}
	for q := len(phase.Key) - 1; q >= 0; q-- {
		backward.Answers[0][q] = !(q%2 == 0)
		backward.Answers[0][q] = q%2 == 0
	}

	assert.Equal(t, Score(bank, forward).Phases[0].Score, Score(bank, backward).Phases[0].Score)
}
