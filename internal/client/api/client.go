// Package api defines the client interface for the platform backend and its
// HTTP implementation. The backend is an external collaborator reached only
// through this REST contract; all business logic (billing, level curve,
// auth) lives server-side.
package api

import (
	"context"

	"github.com/nmorozs/quizadmin/internal/client/models"
)

// Client is the remote-call surface of the admin console. One method per
// backend endpoint; implementations must honor context cancellation.
type Client interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	// GetUser resolves the current identity and role set from the bearer token.
	GetUser(ctx context.Context) (*models.User, error)

	// CalculateLevel evaluates the backend level curve for the given xp.
	CalculateLevel(ctx context.Context, xp int) (*models.LevelInfo, error)

	// GetProgression fetches a user's stored progression record.
	// A missing user is reported as common.ErrNotFound.
	GetProgression(ctx context.Context, userID string) (*models.Progression, error)

	// UpdateProgression persists edits to a user's progression and returns
	// the server's fresh record, including a recomputed LevelInfo.
	UpdateProgression(ctx context.Context, userID string, upd models.ProgressionUpdate) (*models.Progression, error)

	// ListGameModeConfigs lists the per-mode XP/ELO configuration.
	ListGameModeConfigs(ctx context.Context) ([]models.GameModeConfig, error)

	// UpdateGameModeConfig updates one mode's configuration.
	UpdateGameModeConfig(ctx context.Context, mode string, upd models.GameModeConfigUpdate) (*models.GameModeConfig, error)

	// BulkUpdateGameModeConfigs updates all configurations in one call.
	BulkUpdateGameModeConfigs(ctx context.Context, configs []models.GameModeConfig) error

	// ResetGameModeConfigs resets all configurations to platform defaults
	// and returns the resulting set.
	ResetGameModeConfigs(ctx context.Context) ([]models.GameModeConfig, error)

	// ListUsers lists platform users (for locating user IDs).
	ListUsers(ctx context.Context) ([]models.User, error)
}

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means no Authorization header is sent.
type TokenSource interface {
	Token() string
}
