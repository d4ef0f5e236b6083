package domain

type MediaType string

const (
	TypeGame   MediaType = "game"
	TypeBook   MediaType = "book"
	TypeSeries MediaType = "series"
	TypeMovie  MediaType = "movie"
	TypeAnime  MediaType = "anime"
	TypeManga  MediaType = "manga"
)

// ValidMediaTypes is the canonical set of accepted media types.
var ValidMediaTypes = map[MediaType]bool{
	TypeGame: true, TypeBook: true, TypeSeries: true,
	TypeMovie: true, TypeAnime: true, TypeManga: true,
}

type ItemStatus string

const (
	StatusBacklog    ItemStatus = "backlog"
	StatusInProgress ItemStatus = "in_progress"
	StatusFinished   ItemStatus = "finished"
	StatusWishlist   ItemStatus = "wishlist"
	StatusArchived   ItemStatus = "archived"
)

// ValidItemStatuses is the canonical set of accepted statuses.
var ValidItemStatuses = map[ItemStatus]bool{
	StatusBacklog: true, StatusInProgress: true, StatusFinished: true,
	StatusWishlist: true, StatusArchived: true,
}

type DurationUnit string

const (
	UnitHours    DurationUnit = "hours"
	UnitPages    DurationUnit = "pages"
	UnitEpisodes DurationUnit = "episodes"
	UnitMinutes  DurationUnit = "minutes"
	UnitEditions DurationUnit = "editions"
)

type Origin string

const (
	OriginFree Origin = "free"
	OriginPaid Origin = "paid"
)

// CanonicalUnit maps each media type to the unit its duration is measured in.
// Item creation defaults DurationUnit from type, so the per-type duration
// buckets and the per-unit PL conversion table stay aligned.
func CanonicalUnit(t MediaType) DurationUnit {
	switch t {
	case TypeGame:
		return UnitHours
	case TypeBook:
		return UnitPages
	case TypeSeries, TypeAnime:
		return UnitEpisodes
	case TypeMovie:
		return UnitMinutes
	case TypeManga:
		return UnitEditions
	default:
		return UnitHours
	}
}
