package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/metadata"
	"github.com/alexanderramin/nextup/internal/repository"
	"github.com/alexanderramin/nextup/internal/service"
	"github.com/alexanderramin/nextup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	itemRepo := repository.NewSQLiteItemRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	achievementRepo := repository.NewSQLiteAchievementRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	configRepo := repository.NewSQLiteConfigRepo(database)

	achievementSvc := service.NewAchievementService(itemRepo, achievementRepo)

	return &App{
		Library:      service.NewLibraryService(itemRepo, configRepo, achievementSvc),
		Ranking:      service.NewRankingService(itemRepo, configRepo),
		Sessions:     service.NewSessionService(itemRepo, sessionRepo),
		Achievements: achievementSvc,
		Goals:        service.NewGoalService(itemRepo, goalRepo),
		Stats:        service.NewStatsService(itemRepo, sessionRepo, configRepo),
		Metadata:     metadata.NoopProvider{},
		Config:       configRepo,
	}
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	return root.Execute()
}

func TestAddCommand_CreatesItem(t *testing.T) {
	app := testApp(t)

	err := execute(t, app, "add", "--title", "Dune", "--type", "book", "--hype", "8")
	require.NoError(t, err)

	items, err := app.Library.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Dune", items[0].Title)
	assert.Equal(t, domain.TypeBook, items[0].Type)
	assert.Equal(t, domain.StatusBacklog, items[0].Status)
	assert.Equal(t, domain.UnitPages, items[0].DurationUnit)
	assert.Equal(t, 8.0, items[0].Hype)
}

func TestAddCommand_Wishlist(t *testing.T) {
	app := testApp(t)

	err := execute(t, app, "add", "--title", "Elden Ring", "--type", "game", "--wishlist", "--duration", "80")
	require.NoError(t, err)

	items, err := app.Library.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.StatusWishlist, items[0].Status)
}

func TestFinishCommand_UpdatesStatus(t *testing.T) {
	app := testApp(t)
	require.NoError(t, execute(t, app, "add", "--title", "Hades", "--type", "game", "--duration", "30"))

	err := execute(t, app, "finish", "1", "--duration", "25")
	require.NoError(t, err)

	item, err := app.Library.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFinished, item.Status)
	assert.Equal(t, 25.0, item.FinalDuration)
}

func TestUpdateCommand_ChangesOnlyFlaggedFields(t *testing.T) {
	app := testApp(t)
	require.NoError(t, execute(t, app, "add", "--title", "Dune", "--type", "book", "--hype", "8"))

	err := execute(t, app, "update", "1", "--genres", "Sci-Fi, Classic")
	require.NoError(t, err)

	item, err := app.Library.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Sci-Fi, Classic", item.Genres)
	assert.Equal(t, 8.0, item.Hype)
}

func TestSessionLogCommand_BumpsProgress(t *testing.T) {
	app := testApp(t)
	require.NoError(t, execute(t, app, "add", "--title", "Dune", "--type", "book", "--progress-total", "412"))

	err := execute(t, app, "session", "log", "1", "--minutes", "40", "--progress", "30")
	require.NoError(t, err)

	item, err := app.Library.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, item.Status)
	assert.Equal(t, 30.0, item.ProgressCurrent)
}

func TestNextCommand_RunsAgainstCollection(t *testing.T) {
	app := testApp(t)
	require.NoError(t, execute(t, app, "add", "--title", "A", "--type", "game", "--hype", "9"))
	require.NoError(t, execute(t, app, "add", "--title", "B", "--type", "game", "--hype", "2"))

	err := execute(t, app, "next", "--limit", "1")
	require.NoError(t, err)
}

func TestGoalCommands(t *testing.T) {
	app := testApp(t)

	err := execute(t, app, "goal", "add", "--target", "12", "--type", "book")
	require.NoError(t, err)

	progress, err := app.Goals.Progress(context.Background(), time.Now().Year())
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, 12, progress[0].Goal.Target)
	assert.Equal(t, 0, progress[0].Done)
}

func TestConfigSetWeightCommand(t *testing.T) {
	app := testApp(t)

	err := execute(t, app, "config", "set-weight", "hype", "0.4")
	require.NoError(t, err)

	cfg, err := app.Config.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.4, cfg.Weights[domain.FactorHype])

	err = execute(t, app, "config", "set-weight", "vibes", "0.4")
	assert.Error(t, err)
}
