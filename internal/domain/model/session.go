package model

import "time"

// State состояние диалога пользователя
type State string

const (
	StateAwaitingName         State = "awaiting_name"
	StateSelectingPhase       State = "selecting_phase"
	StateAnsweringQuestions   State = "answering_questions"
	StateCheckingSubscription State = "checking_subscription"
	StateShowingResults       State = "showing_results"
	StateEnded                State = "ended"
)

// Selection выбранный объём теста: одна фаза или полный тест
type Selection struct {
	FullTest bool `json:"full_test"`
	Phase    int  `json:"phase"`
}

// Session хранит прогресс прохождения теста одним пользователем.
// Answers: индекс фазы -> индекс вопроса -> ответ.
type Session struct {
	UserID            int64                `json:"user_id"`
	State             State                `json:"state"`
	FullName          string               `json:"full_name,omitempty"`
	Pending           *Selection           `json:"pending,omitempty"`
	Phase             int                  `json:"phase"`
	Question          int                  `json:"question"`
	Answers           map[int]map[int]bool `json:"answers"`
	FullTest          bool                 `json:"full_test"`
	CertificateIssued bool                 `json:"certificate_issued"`
	StartedAt         time.Time            `json:"started_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// NewSession создаёт пустую сессию в состоянии выбора фазы
func NewSession(userID int64, now time.Time) *Session {
	return &Session{
		UserID:    userID,
		State:     StateSelectingPhase,
		Answers:   make(map[int]map[int]bool),
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Begin сбрасывает ответы и начинает прохождение выбранного объёма теста.
// Имя пользователя сохраняется.
func (s *Session) Begin(sel Selection, now time.Time) {
	s.State = StateAnsweringQuestions
	s.Pending = nil
	s.FullTest = sel.FullTest
	s.Phase = sel.Phase
	if sel.FullTest {
		s.Phase = 0
	}
	s.Question = 0
	s.Answers = make(map[int]map[int]bool)
	s.CertificateIssued = false
	s.StartedAt = now
	s.UpdatedAt = now
}

// Record сохраняет ответ на текущий вопрос и сдвигает указатель вопроса
func (s *Session) Record(answer bool) {
	if s.Answers == nil {
		s.Answers = make(map[int]map[int]bool)
	}
	phase, ok := s.Answers[s.Phase]
	if !ok {
		phase = make(map[int]bool)
		s.Answers[s.Phase] = phase
	}
	phase[s.Question] = answer
	s.Question++
}

// Clone глубокая копия сессии
func (s *Session) Clone() *Session {
	cp := *s
	if s.Pending != nil {
		sel := *s.Pending
		cp.Pending = &sel
	}
	cp.Answers = make(map[int]map[int]bool, len(s.Answers))
	for phase, answers := range s.Answers {
		m := make(map[int]bool, len(answers))
		for q, a := range answers {
			m[q] = a
		}
		cp.Answers[phase] = m
	}
	return &cp
}
