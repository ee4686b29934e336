package domain

import "time"

// Center represents a sports center that can be booked by the hour
type Center struct {
	ID       int64
	Name     string
	Category string
	Address  string

	// Capacity количество параллельных бронирований на один часовой слот.
	// Значение <= 0 означает "не задано" - действует DefaultCapacity
	Capacity int

	// Derived fields, recomputed by the rating aggregator
	Rating      float64
	ReviewCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveCapacity returns the capacity to enforce for this center,
// falling back to DefaultCapacity when none is configured
func (c *Center) EffectiveCapacity() int {
	if c.Capacity <= 0 {
		return DefaultCapacity
	}
	return c.Capacity
}

// HasReviews returns true if at least one review has been aggregated
func (c *Center) HasReviews() bool {
	return c.ReviewCount > 0
}
