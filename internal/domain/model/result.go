package model

import "time"

// ResultRecord архивная запись о завершённом тесте
type ResultRecord struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"user_id"`
	FullName    string    `json:"full_name"`
	FullTest    bool      `json:"full_test"`
	TotalScore  int       `json:"total_score"`
	Completed   int       `json:"completed_phases"`
	Level       string    `json:"level"`
	PhaseScores []int     `json:"phase_scores"`
	CreatedAt   time.Time `json:"created_at"`
}
