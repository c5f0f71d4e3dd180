// Package services contains application services for the admin console:
// the progression model, game-mode configuration, and user directory.
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

var (
	// ErrNoRecord means an edit or persist was attempted before a
	// progression record was fetched.
	ErrNoRecord = errors.New("no progression record loaded")

	// ErrNegativeXP marks locally rejected input; it never reaches the backend.
	ErrNegativeXP = errors.New("xp must be non-negative")
)

// ProgressionService presents, edits, and persists a user's XP/level/ELO
// state, and previews the level breakdown for arbitrary XP values.
//
// The in-memory edit buffer holds the record last fetched or persisted.
// EditField mutates only the buffer; the buffered LevelInfo goes stale
// relative to an edited XP until the next Persist, which replaces the whole
// buffer with the server's fresh computation. The client never evaluates
// the level curve itself.
//
// Concurrent fetches are ordered by a monotonic sequence number: a response
// belonging to an older request than the one already applied is discarded
// rather than letting the last writer win.
type ProgressionService struct {
	client api.Client

	mu      sync.Mutex
	seq     uint64
	applied uint64
	userID  string
	buf     *models.Progression
}

func NewProgressionService(client api.Client) *ProgressionService {
	return &ProgressionService{client: client}
}

// PreviewLevel evaluates the backend level curve for xp. Negative xp is
// rejected locally with ErrNegativeXP. Failures leave any previously
// fetched record untouched; nothing is retried.
func (s *ProgressionService) PreviewLevel(ctx context.Context, xp int) (*models.LevelInfo, error) {
	if xp < 0 {
		return nil, ErrNegativeXP
	}
	info, err := s.client.CalculateLevel(ctx, xp)
	if err != nil {
		return nil, fmt.Errorf("calculating level: %w", err)
	}
	return info, nil
}

// Fetch loads a user's stored progression into the edit buffer. A missing
// user surfaces common.ErrNotFound and leaves the buffer unchanged. When
// responses of overlapping fetches arrive out of issue order, only the
// newest-issued one is committed.
func (s *ProgressionService) Fetch(ctx context.Context, userID string) (*models.Progression, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.New("user id must not be empty")
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	p, err := s.client.GetProgression(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq > s.applied {
		s.applied = seq
		s.userID = userID
		s.buf = p
	}
	return p.Clone(), nil
}

// Buffer returns a copy of the current edit buffer, or nil when nothing is
// loaded.
func (s *ProgressionService) Buffer() *models.Progression {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Clone()
}

// EditField mutates one field of the edit buffer. Recognized fields: xp,
// level, elo, tier. Purely local: no network call is made and LevelInfo is
// not recomputed.
func (s *ProgressionService) EditField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf == nil {
		return ErrNoRecord
	}

	switch strings.ToLower(field) {
	case "xp":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid xp %q", value)
		}
		if n < 0 {
			return ErrNegativeXP
		}
		s.buf.XP = n
	case "level":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid level %q: must be a positive integer", value)
		}
		s.buf.Level = n
	case "elo":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid elo rating %q", value)
		}
		s.buf.EloRating = n
	case "tier":
		tier := models.ExperienceTier(strings.ToUpper(value))
		if !tier.Valid() {
			return fmt.Errorf("invalid tier %q: expected BEGINNER, INTERMEDIATE or ADVANCED", value)
		}
		s.buf.ExperienceTier = tier
	default:
		return fmt.Errorf("unknown field %q: expected xp, level, elo or tier", field)
	}
	return nil
}

// Persist sends the edited buffer to the backend. On success the buffer is
// replaced in full by the server's record, closing the LevelInfo staleness
// window; on failure it is left exactly as it was so the operator can
// correct and retry.
func (s *ProgressionService) Persist(ctx context.Context) (*models.Progression, error) {
	s.mu.Lock()
	if s.buf == nil {
		s.mu.Unlock()
		return nil, ErrNoRecord
	}
	userID := s.userID
	upd := models.ProgressionUpdate{
		XP:             s.buf.XP,
		Level:          s.buf.Level,
		EloRating:      s.buf.EloRating,
		ExperienceTier: s.buf.ExperienceTier,
	}
	s.mu.Unlock()

	p, err := s.client.UpdateProgression(ctx, userID, upd)
	if err != nil {
		return nil, fmt.Errorf("persisting progression: %w", err)
	}

	s.mu.Lock()
	s.buf = p
	s.mu.Unlock()
	return p.Clone(), nil
}
