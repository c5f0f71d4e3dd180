package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/nmorozs/quizadmin/internal/client/models"
)

// parseXP turns operator input into a usable XP value. Anything that does
// not parse as a non-negative integer is clamped to 0, mirroring the
// calculator's input handling.
func parseXP(s string) int {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 0 {
		return 0
	}
	return n
}

// Calc previews the level breakdown for an XP value. On failure the
// previously printed result simply stands; nothing is retried.
func (a *App) Calc(ctx context.Context, args []string) error {
	if _, err := a.requireAdmin(); err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Println("Usage: calc <xp>")
		return nil
	}

	xp := parseXP(args[0])

	info, err := a.progression.PreviewLevel(ctx, xp)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printLevelInfo(info)
	return nil
}

func printLevelInfo(info *models.LevelInfo) {
	fmt.Printf("Level %d (%d%% towards level %d)\n", info.Level, info.Progress, info.Level+1)
	fmt.Printf("  XP in current level:  %d / %d\n", info.XPInCurrentLevel, info.XPNeededForCurrentLevel)
	fmt.Printf("  XP to next level:     %d\n", info.XPToNext)
	fmt.Printf("  Level range:          %d - %d XP\n", info.XPForCurrentLevel, info.XPForNextLevel-1)
}
