package service

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/nextup/internal/repository"
	"github.com/alexanderramin/nextup/internal/testutil"
)

// testEnv wires every service over a fresh in-memory database.
type testEnv struct {
	db           *sql.DB
	items        *repository.SQLiteItemRepo
	sessions     *repository.SQLiteSessionRepo
	config       *repository.SQLiteConfigRepo
	goals        *repository.SQLiteGoalRepo
	library      LibraryService
	sessionSvc   SessionService
	achievements AchievementService
	rankingSvc   RankingService
	goalSvc      GoalService
	stats        StatsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	items := repository.NewSQLiteItemRepo(database)
	sessions := repository.NewSQLiteSessionRepo(database)
	config := repository.NewSQLiteConfigRepo(database)
	goals := repository.NewSQLiteGoalRepo(database)
	achRepo := repository.NewSQLiteAchievementRepo(database)

	achSvc := NewAchievementService(items, achRepo)
	return &testEnv{
		db:           database,
		items:        items,
		sessions:     sessions,
		config:       config,
		goals:        goals,
		library:      NewLibraryService(items, config, achSvc),
		sessionSvc:   NewSessionService(items, sessions),
		achievements: achSvc,
		rankingSvc:   NewRankingService(items, config),
		goalSvc:      NewGoalService(items, goals),
		stats:        NewStatsService(items, sessions, config),
	}
}
