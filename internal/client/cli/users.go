package cli

import (
	"context"
	"fmt"
	"log"
)

// Users lists platform users so the operator can locate a user id.
func (a *App) Users(ctx context.Context) error {
	if _, err := a.requireAdmin(); err != nil {
		return err
	}

	users, err := a.users.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(users) == 0 {
		fmt.Println("No users")
		return nil
	}
	for _, u := range users {
		fmt.Printf("%-36s %-30s %s\n", u.ID, u.Email, u.Name)
	}
	return nil
}
