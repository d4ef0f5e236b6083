package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/nextup/internal/metadata"
	"github.com/alexanderramin/nextup/internal/repository"
	"github.com/alexanderramin/nextup/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Library      service.LibraryService
	Ranking      service.RankingService
	Sessions     service.SessionService
	Achievements service.AchievementService
	Goals        service.GoalService
	Stats        service.StatsService
	Metadata     metadata.Provider
	Config       repository.ConfigRepo

	// IsInteractive reports whether stdin is a terminal; decorative output
	// is skipped when it is not.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "nextup" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "nextup",
		Short: "Media backlog tracker and recommendation engine",
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newUpdateCmd(app),
		newSearchCmd(app),
		newNextCmd(app),
		newFinishCmd(app),
		newRateCmd(app),
		newArchiveCmd(app),
		newRemoveCmd(app),
		newUnlockCmd(app),
		newSessionCmd(app),
		newAchievementsCmd(app),
		newGoalCmd(app),
		newStatsCmd(app),
		newReviewCmd(app),
		newHallCmd(app),
		newAuditCmd(app),
		newConfigCmd(app),
	)

	return root
}

func parseItemID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid item id %q", arg)
	}
	return id, nil
}
