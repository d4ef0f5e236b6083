package domain

import "time"

// ActivitySession records one sitting spent on an item.
type ActivitySession struct {
	ID            string
	ItemID        int64
	Date          time.Time
	Minutes       int
	ProgressDelta float64 // pages read, episodes watched, achievements earned...
	Note          string
	CreatedAt     time.Time
}
