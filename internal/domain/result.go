package domain

import (
	"time"

	"github.com/google/uuid"
)

// Position is a medal position in a competition
type Position int

const (
	PositionGold   Position = 1
	PositionSilver Position = 2
	PositionBronze Position = 3
)

// Positions lists the medal positions in award order
var Positions = []Position{PositionGold, PositionSilver, PositionBronze}

// Prize returns the prize label awarded for the position
func (p Position) Prize() string {
	switch p {
	case PositionGold:
		return "Gold Medal"
	case PositionSilver:
		return "Silver Medal"
	case PositionBronze:
		return "Bronze Medal"
	default:
		return ""
	}
}

// Result is one medal awarded to one user in one competition
type Result struct {
	ID            uuid.UUID `db:"id" json:"id"`
	CompetitionID string    `db:"competition_id" json:"competitionId"`
	UserID        string    `db:"user_id" json:"userId"`
	PhotoID       string    `db:"photo_id" json:"photoId"`
	Position      Position  `db:"position" json:"position"`
	FinalScore    float64   `db:"final_score" json:"finalScore"`
	Prize         string    `db:"prize" json:"prize"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// NewResult creates a result crediting the given submission with a medal
func NewResult(sub RankedSubmission, position Position) *Result {
	return &Result{
		ID:            uuid.New(),
		CompetitionID: sub.CompetitionID,
		UserID:        sub.UserID,
		PhotoID:       sub.ID,
		Position:      position,
		FinalScore:    sub.Rating(),
		Prize:         position.Prize(),
		CreatedAt:     time.Now(),
	}
}

type ResultTable struct {
	ID            string
	CompetitionID string
	UserID        string
	PhotoID       string
	Position      string
	FinalScore    string
	Prize         string
	CreatedAt     string
}

func GetResultTable() ResultTable {
	return ResultTable{
		ID:            "id",
		CompetitionID: "competition_id",
		UserID:        "user_id",
		PhotoID:       "photo_id",
		Position:      "position",
		FinalScore:    "final_score",
		Prize:         "prize",
		CreatedAt:     "created_at",
	}
}

func (ResultTable) TableName() string {
	return "results"
}
