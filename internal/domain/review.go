package domain

import "time"

// Review represents a user's rating of a center, tied to one reservation.
// A reservation may receive at most one review
type Review struct {
	ID            int64
	CenterID      int64
	ReservationID int64
	UserID        string
	Rating        int // 1..5
	Comment       string
	CreatedAt     time.Time
}

// IsValidRating returns true if rating is an allowed star value
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
