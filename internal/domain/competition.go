package domain

import "time"

// CompetitionStatus represents the lifecycle state of a competition
type CompetitionStatus string

const (
	CompetitionUpcoming  CompetitionStatus = "upcoming"
	CompetitionActive    CompetitionStatus = "active"
	CompetitionVoting    CompetitionStatus = "voting"
	CompetitionCompleted CompetitionStatus = "completed"
)

// Competition represents a themed photo competition
type Competition struct {
	ID            string            `db:"id" json:"id"`
	Title         string            `db:"title" json:"title"`
	Status        CompetitionStatus `db:"status" json:"status"`
	StartDate     time.Time         `db:"start_date" json:"startDate"`
	EndDate       time.Time         `db:"end_date" json:"endDate"`
	VotingEndDate time.Time         `db:"voting_end_date" json:"votingEndDate"`
	UpdatedAt     time.Time         `db:"updated_at" json:"updatedAt"`
}

type CompetitionTable struct {
	ID            string
	Title         string
	Status        string
	StartDate     string
	EndDate       string
	VotingEndDate string
	UpdatedAt     string
}

func GetCompetitionTable() CompetitionTable {
	return CompetitionTable{
		ID:            "id",
		Title:         "title",
		Status:        "status",
		StartDate:     "start_date",
		EndDate:       "end_date",
		VotingEndDate: "voting_end_date",
		UpdatedAt:     "updated_at",
	}
}

func (CompetitionTable) TableName() string {
	return "competitions"
}

// StatusTransition records a status change applied to a competition
type StatusTransition struct {
	CompetitionID string            `json:"competitionId"`
	From          CompetitionStatus `json:"from"`
	To            CompetitionStatus `json:"to"`
}
