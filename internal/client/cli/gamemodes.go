package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/nmorozs/quizadmin/internal/client/models"
)

// Modes dispatches the game-mode configuration subcommands:
//
//	modes                      list configurations (refreshed from the backend)
//	modes set <mode> <f> <v>   edit xp or elo of one mode locally
//	modes update <mode>        push one mode's edits
//	modes saveall              push all configurations in one bulk call
//	modes reset                restore platform defaults
func (a *App) Modes(ctx context.Context, args []string) error {
	if _, err := a.requireAdmin(); err != nil {
		return err
	}

	if len(args) == 0 {
		configs, err := a.gameModes.Load(ctx)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		printConfigs(configs)
		return nil
	}

	switch args[0] {
	case "set":
		if len(args) != 4 {
			fmt.Println("Usage: modes set <mode> <xp|elo> <value>")
			return nil
		}
		if err := a.gameModes.Set(args[1], args[2], args[3]); err != nil {
			log.Printf("error: %v", err)
			return err
		}
		fmt.Printf("%s %s set to %s (not saved yet)\n", args[1], args[2], args[3])
		return nil

	case "update":
		if len(args) != 2 {
			fmt.Println("Usage: modes update <mode>")
			return nil
		}
		cfg, err := a.gameModes.Update(ctx, args[1])
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		fmt.Printf("%s updated\n", displayName(cfg.GameMode))
		return nil

	case "saveall":
		if err := a.gameModes.SaveAll(ctx); err != nil {
			log.Printf("error: %v", err)
			return err
		}
		fmt.Println("All configurations updated")
		return nil

	case "reset":
		configs, err := a.gameModes.Reset(ctx)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		fmt.Println("Configurations reset to defaults")
		printConfigs(configs)
		return nil

	default:
		fmt.Println("Unknown subcommand:", args[0])
		return nil
	}
}

func printConfigs(configs []models.GameModeConfig) {
	if len(configs) == 0 {
		fmt.Println("No game mode configurations")
		return
	}
	for _, c := range configs {
		elo := "off"
		if c.EloEnabled {
			elo = "on"
		}
		fmt.Printf("%-22s %-22s xp/correct: %-4d elo: %s\n", c.GameMode, displayName(c.GameMode), c.XPPerCorrect, elo)
	}
}

func displayName(mode string) string {
	if name, ok := models.GameModeNames[mode]; ok {
		return name
	}
	return mode
}
