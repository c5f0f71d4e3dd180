package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nmorozs/quizadmin/internal/client/models"
	"github.com/nmorozs/quizadmin/internal/common"
)

// Prog dispatches the progression subcommands:
//
//	prog <userId>              load a user's progression into the edit buffer
//	prog show                  show the loaded record
//	prog edit <field> <value>  edit xp, level, elo or tier locally
//	prog save                  persist the edits
func (a *App) Prog(ctx context.Context, args []string) error {
	if _, err := a.requireAdmin(); err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Println("Usage: prog <userId> | prog show | prog edit <field> <value> | prog save")
		return nil
	}

	switch args[0] {
	case "show":
		return a.progShow()
	case "edit":
		return a.progEdit(args[1:])
	case "save":
		return a.progSave(ctx)
	default:
		return a.progFetch(ctx, args[0])
	}
}

func (a *App) progFetch(ctx context.Context, userID string) error {
	p, err := a.progression.Fetch(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// The one failure kind surfaced distinctly to the operator.
			fmt.Printf("User %s not found\n", userID)
			return err
		}
		log.Printf("error: %v", err)
		return err
	}

	printProgression(p)
	return nil
}

func (a *App) progShow() error {
	p := a.progression.Buffer()
	if p == nil {
		fmt.Println("No progression loaded. Use 'prog <userId>' first.")
		return nil
	}
	printProgression(p)
	return nil
}

func (a *App) progEdit(args []string) error {
	if len(args) != 2 {
		fmt.Println("Usage: prog edit <xp|level|elo|tier> <value>")
		return nil
	}
	if err := a.progression.EditField(args[0], args[1]); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("%s set to %s (not saved yet; level info refreshes on save)\n", args[0], args[1])
	return nil
}

func (a *App) progSave(ctx context.Context) error {
	p, err := a.progression.Persist(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Progression updated")
	printProgression(p)
	return nil
}

func printProgression(p *models.Progression) {
	fmt.Printf("User %s\n", p.UserID)
	fmt.Printf("  Level: %d  XP: %d  ELO: %d  Tier: %s\n", p.Level, p.XP, p.EloRating, p.ExperienceTier)
	if p.LevelInfo != nil {
		printLevelInfo(p.LevelInfo)
	}
}
