package domain

import "time"

// SubmissionStatus represents the moderation state of a photo submission
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Submission represents a photo entered into a competition
type Submission struct {
	ID            string           `db:"id" json:"id"`
	CompetitionID string           `db:"competition_id" json:"competitionId"`
	UserID        string           `db:"user_id" json:"userId"`
	Title         string           `db:"title" json:"title"`
	AverageRating *float64         `db:"average_rating" json:"averageRating"`
	RatingCount   int              `db:"rating_count" json:"ratingCount"`
	Status        SubmissionStatus `db:"status" json:"status"`
	CreatedAt     time.Time        `db:"created_at" json:"createdAt"`
}

// Rating returns the average rating, or 0 when nobody has voted yet
func (s Submission) Rating() float64 {
	if s.AverageRating == nil {
		return 0
	}
	return *s.AverageRating
}

type SubmissionTable struct {
	ID            string
	CompetitionID string
	UserID        string
	Title         string
	AverageRating string
	RatingCount   string
	Status        string
	CreatedAt     string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:            "id",
		CompetitionID: "competition_id",
		UserID:        "user_id",
		Title:         "title",
		AverageRating: "average_rating",
		RatingCount:   "rating_count",
		Status:        "status",
		CreatedAt:     "created_at",
	}
}

func (SubmissionTable) TableName() string {
	return "submissions"
}

// RankedSubmission is a submission annotated with its dense rank
type RankedSubmission struct {
	Submission
	Rank int `json:"rank"`
}
