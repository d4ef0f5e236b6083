package domain

import "time"

// BacklogItem is one tracked entry in the collection. IDs are assigned
// monotonically by the store on creation and never reused.
type BacklogItem struct {
	ID       int64
	Title    string
	Type     MediaType
	Status   ItemStatus
	Platform string
	Author   string

	// Genres is comma-encoded on the wire; use SplitGenres to explode it.
	Genres string

	// Scoring inputs
	Hype           float64 // 0-10
	ExternalRating float64 // 0-100
	PersonalRating float64 // 0-10, 0 = unrated
	Origin         Origin

	// Duration
	DurationEstimate float64
	DurationUnit     DurationUnit
	FinalDuration    float64 // actual, 0 = unknown (estimate is used instead)

	// Progress
	ProgressCurrent float64
	ProgressTotal   float64

	// Series linkage
	SeriesName  string
	SeriesOrder int
	SeriesTotal int

	CoverURL     string
	DateAdded    time.Time
	DateFinished *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProgressRatio returns completion as a fraction clipped to [0,1].
// Data can be dirty (current > total); the ratio is clipped, not rejected.
func (b BacklogItem) ProgressRatio() float64 {
	if b.ProgressTotal <= 0 {
		return 0
	}
	r := b.ProgressCurrent / b.ProgressTotal
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Open reports whether the item is still a candidate for "what's next".
func (b BacklogItem) Open() bool {
	return b.Status != StatusFinished && b.Status != StatusArchived
}
