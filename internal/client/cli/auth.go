package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/nmorozs/quizadmin/internal/client/models"
	"github.com/nmorozs/quizadmin/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for email and password, exchanges them for a bearer token
// and resolves the identity behind it. A token without the administrative
// role is rejected here, not at the first protected command.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.LoginWithCredentials(ctx, email, string(password)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Logged in as %s\n", a.session.CurrentUser().Email)
	return nil
}

// Logout clears the persisted token and the resolved identity.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out")
	return nil
}

// WhoAmI prints the resolved identity and its role set.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.requireAdmin()
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s> (id %s)\n", user.Name, user.Email, user.ID)
	for _, r := range user.Roles {
		fmt.Printf("  role: %s\n", r.Role.Title)
	}
	return nil
}

// requireAdmin is the gate in front of protected commands: it returns the
// authenticated administrator, or prints a login hint.
func (a *App) requireAdmin() (*models.User, error) {
	user, err := a.session.RequireAdmin()
	if err != nil {
		fmt.Println("Not authorized. Use 'login' first.")
		return nil, err
	}
	return user, nil
}
