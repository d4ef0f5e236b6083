package domain

import "time"

// Achievement is a one-way unlockable flag. Once a key exists it is never
// deleted, and once unlocked it never re-locks.
type Achievement struct {
	Key         string
	Name        string
	Description string
	Unlocked    bool
	UnlockedAt  *time.Time

	// Dynamic marks definitions generated from observed data clusters
	// rather than the fixed catalog.
	Dynamic bool
}
