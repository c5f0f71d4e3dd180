package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/nmorozs/quizadmin/internal/client/api"
	"github.com/nmorozs/quizadmin/internal/client/models"
)

// ErrUnknownMode means the named game mode is not in the loaded working set.
var ErrUnknownMode = errors.New("unknown game mode")

// GameModeService manages the per-mode XP/ELO configuration. It keeps a
// local working set loaded from the backend; Set edits it locally, Update
// and SaveAll push it back, Reset restores platform defaults. Failed calls
// leave the working set untouched.
type GameModeService struct {
	client api.Client

	mu      sync.Mutex
	configs []models.GameModeConfig
}

func NewGameModeService(client api.Client) *GameModeService {
	return &GameModeService{client: client}
}

// Load fetches the configuration list and replaces the working set.
func (s *GameModeService) Load(ctx context.Context) ([]models.GameModeConfig, error) {
	configs, err := s.client.ListGameModeConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading game mode configs: %w", err)
	}

	s.mu.Lock()
	s.configs = configs
	s.mu.Unlock()
	return s.Configs(), nil
}

// Configs returns a copy of the working set.
func (s *GameModeService) Configs() []models.GameModeConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.GameModeConfig, len(s.configs))
	copy(out, s.configs)
	return out
}

// Set edits one field of one mode in the working set. Recognized fields:
// xp (non-negative integer), elo (bool). Purely local.
func (s *GameModeService) Set(mode, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(mode)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	switch strings.ToLower(field) {
	case "xp":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid xp %q: must be a non-negative integer", value)
		}
		s.configs[idx].XPPerCorrect = n
	case "elo":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid elo flag %q: expected true or false", value)
		}
		s.configs[idx].EloEnabled = b
	default:
		return fmt.Errorf("unknown field %q: expected xp or elo", field)
	}
	return nil
}

// Update pushes one mode's current local values to the backend and replaces
// that entry with the server's response.
func (s *GameModeService) Update(ctx context.Context, mode string) (*models.GameModeConfig, error) {
	s.mu.Lock()
	idx := s.indexOf(mode)
	if idx < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	xp := s.configs[idx].XPPerCorrect
	elo := s.configs[idx].EloEnabled
	s.mu.Unlock()

	updated, err := s.client.UpdateGameModeConfig(ctx, mode, models.GameModeConfigUpdate{
		XPPerCorrect: &xp,
		EloEnabled:   &elo,
	})
	if err != nil {
		return nil, fmt.Errorf("updating %s config: %w", mode, err)
	}

	s.mu.Lock()
	if idx := s.indexOf(mode); idx >= 0 {
		s.configs[idx] = *updated
	}
	s.mu.Unlock()

	out := *updated
	return &out, nil
}

// SaveAll pushes the whole working set in one bulk call.
func (s *GameModeService) SaveAll(ctx context.Context) error {
	configs := s.Configs()
	if err := s.client.BulkUpdateGameModeConfigs(ctx, configs); err != nil {
		return fmt.Errorf("bulk updating game mode configs: %w", err)
	}
	return nil
}

// Reset restores platform defaults and replaces the working set with the
// backend's response.
func (s *GameModeService) Reset(ctx context.Context) ([]models.GameModeConfig, error) {
	configs, err := s.client.ResetGameModeConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("resetting game mode configs: %w", err)
	}

	s.mu.Lock()
	s.configs = configs
	s.mu.Unlock()
	return s.Configs(), nil
}

// indexOf returns the working-set index of mode, or -1. Caller holds s.mu.
func (s *GameModeService) indexOf(mode string) int {
	for i, c := range s.configs {
		if c.GameMode == mode {
			return i
		}
	}
	return -1
}
