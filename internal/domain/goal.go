package domain

import "time"

// Goal is a yearly finishing target, optionally narrowed to a media type
// and/or a single genre.
type Goal struct {
	ID        string
	MediaType MediaType // empty = any type
	Genre     string    // empty = any genre
	Target    int
	Year      int
	CreatedAt time.Time
}
