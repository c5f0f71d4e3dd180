package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nmorozs/quizadmin/internal/client/api"
	"github.com/nmorozs/quizadmin/internal/client/models"
	"github.com/nmorozs/quizadmin/internal/common"
)

type fakeClient struct {
	api.Client

	mu sync.Mutex

	progression    *models.Progression
	progressionErr error
	getCalls       int

	updated     *models.Progression
	updateErr   error
	updateCalls int
	lastUpdate  models.ProgressionUpdate

	levelInfo  *models.LevelInfo
	levelErr   error
	levelCalls int

	totalCalls int
}

func (f *fakeClient) GetProgression(ctx context.Context, userID string) (*models.Progression, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	f.totalCalls++
	return f.progression, f.progressionErr
}

func (f *fakeClient) UpdateProgression(ctx context.Context, userID string, upd models.ProgressionUpdate) (*models.Progression, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	f.totalCalls++
	f.lastUpdate = upd
	return f.updated, f.updateErr
}

func (f *fakeClient) CalculateLevel(ctx context.Context, xp int) (*models.LevelInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.levelCalls++
	f.totalCalls++
	return f.levelInfo, f.levelErr
}

func sampleProgression() *models.Progression {
	return &models.Progression{
		UserID:         "u1",
		XP:             1000,
		Level:          4,
		EloRating:      1100,
		ExperienceTier: models.TierBeginner,
		LevelInfo:      &models.LevelInfo{Level: 4, Progress: 0, XPForCurrentLevel: 1000, XPForNextLevel: 2000},
	}
}

func TestFetch_ReplacesBuffer(t *testing.T) {
	fc := &fakeClient{progression: sampleProgression()}
	svc := NewProgressionService(fc)

	p, err := svc.Fetch(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", p.UserID)

	buf := svc.Buffer()
	require.NotNil(t, buf)
	require.Equal(t, 1000, buf.XP)
}

func TestFetch_EmptyUserID(t *testing.T) {
	fc := &fakeClient{}
	svc := NewProgressionService(fc)

	_, err := svc.Fetch(context.Background(), "   ")
	require.Error(t, err)
	require.Zero(t, fc.getCalls)
}

func TestFetch_NotFound_BufferStaysEmpty(t *testing.T) {
	fc := &fakeClient{progressionErr: common.ErrNotFound}
	svc := NewProgressionService(fc)

	_, err := svc.Fetch(context.Background(), "user-404")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.Nil(t, svc.Buffer())
}

func TestEditField_IsLocalOnly(t *testing.T) {
	fc := &fakeClient{progression: sampleProgression()}
	svc := NewProgressionService(fc)

	_, err := svc.Fetch(context.Background(), "u1")
	require.NoError(t, err)
	callsAfterFetch := fc.totalCalls

	require.NoError(t, svc.EditField("xp", "1500"))
	require.NoError(t, svc.EditField("level", "5"))
	require.NoError(t, svc.EditField("elo", "1300"))
	require.NoError(t, svc.EditField("tier", "advanced"))

	require.Equal(t, callsAfterFetch, fc.totalCalls, "EditField must never call the backend")

	buf := svc.Buffer()
	require.Equal(t, 1500, buf.XP)
	require.Equal(t, 5, buf.Level)
	require.Equal(t, 1300, buf.EloRating)
	require.Equal(t, models.TierAdvanced, buf.ExperienceTier)

	// LevelInfo is deliberately not recomputed: still the fetched snapshot.
	require.Equal(t, 4, buf.LevelInfo.Level)
}

func TestEditField_Validation(t *testing.T) {
	fc := &fakeClient{progression: sampleProgression()}
	svc := NewProgressionService(fc)
	_, err := svc.Fetch(context.Background(), "u1")
	require.NoError(t, err)

	require.ErrorIs(t, svc.EditField("xp", "-5"), ErrNegativeXP)
	require.Error(t, svc.EditField("xp", "abc"))
	require.Error(t, svc.EditField("level", "0"))
	require.Error(t, svc.EditField("tier", "EXPERT"))
	require.Error(t, svc.EditField("nosuch", "1"))

	// Failed edits leave the buffer unchanged.
	buf := svc.Buffer()
	require.Equal(t, 1000, buf.XP)
	require.Equal(t, 4, buf.Level)
}

func TestEditField_NoRecordLoaded(t *testing.T) {
	svc := NewProgressionService(&fakeClient{})
	require.ErrorIs(t, svc.EditField("xp", "1"), ErrNoRecord)
}

func TestPersist_ReplacesBufferWithServerRecord(t *testing.T) {
	server := sampleProgression()
	server.XP = 1500
	server.LevelInfo = &models.LevelInfo{Level: 5, Progress: 50, XPForCurrentLevel: 1000, XPForNextLevel: 2000}

	fc := &fakeClient{progression: sampleProgression(), updated: server}
	svc := NewProgressionService(fc)
	_, err := svc.Fetch(context.Background(), "u1")
	require.NoError(t, err)

	require.NoError(t, svc.EditField("xp", "1500"))

	p, err := svc.Persist(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1500, fc.lastUpdate.XP)

	// Displayed LevelInfo is the server's fresh computation, never a local guess.
	require.Equal(t, 5, p.LevelInfo.Level)
	require.Equal(t, 50, p.LevelInfo.Progress)
	require.Equal(t, 50, svc.Buffer().LevelInfo.Progress)
}

func TestPersist_FailureLeavesBufferIntact(t *testing.T) {
	fc := &fakeClient{progression: sampleProgression(), updateErr: common.ErrUnavailable}
	svc := NewProgressionService(fc)
	_, err := svc.Fetch(context.Background(), "u1")
	require.NoError(t, err)

	before := svc.Buffer()
	require.NoError(t, svc.EditField("xp", "1500"))
	edited := svc.Buffer()

	_, err = svc.Persist(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)

	after := svc.Buffer()
	require.Equal(t, edited, after, "failed persist must not alter the buffer")
	require.NotEqual(t, before, after)
}

func TestPersist_NoRecordLoaded(t *testing.T) {
	svc := NewProgressionService(&fakeClient{})
	_, err := svc.Persist(context.Background())
	require.ErrorIs(t, err, ErrNoRecord)
}

func TestPreviewLevel_RejectsNegativeLocally(t *testing.T) {
	fc := &fakeClient{}
	svc := NewProgressionService(fc)

	_, err := svc.PreviewLevel(context.Background(), -1)
	require.ErrorIs(t, err, ErrNegativeXP)
	require.Zero(t, fc.levelCalls, "negative xp must not reach the backend")
}

func TestPreviewLevel_PassesThrough(t *testing.T) {
	info := &models.LevelInfo{Level: 5, Progress: 50, XPForCurrentLevel: 1000, XPForNextLevel: 2000}
	fc := &fakeClient{levelInfo: info}
	svc := NewProgressionService(fc)

	got, err := svc.PreviewLevel(context.Background(), 1500)
	require.NoError(t, err)
	require.Equal(t, info, got)
}

// blockingClient lets the test control when each in-flight GetProgression
// returns, to exercise out-of-order response arrival.
type blockingClient struct {
	api.Client

	started chan string
	release map[string]chan *models.Progression
}

func (c *blockingClient) GetProgression(ctx context.Context, userID string) (*models.Progression, error) {
	c.started <- userID
	return <-c.release[userID], nil
}

func TestFetch_StaleResponseDiscarded(t *testing.T) {
	bc := &blockingClient{
		started: make(chan string, 2),
		release: map[string]chan *models.Progression{
			"user-a": make(chan *models.Progression, 1),
			"user-b": make(chan *models.Progression, 1),
		},
	}
	svc := NewProgressionService(bc)

	done := make(chan string, 2)
	fetch := func(userID string) {
		_, err := svc.Fetch(context.Background(), userID)
		require.NoError(t, err)
		done <- userID
	}

	// Issue fetch A first, then fetch B, while both are held in flight.
	go fetch("user-a")
	require.Equal(t, "user-a", waitFor(t, bc.started))
	go fetch("user-b")
	require.Equal(t, "user-b", waitFor(t, bc.started))

	// B (newer request) responds first and is committed.
	bc.release["user-b"] <- &models.Progression{UserID: "user-b", XP: 2}
	require.Equal(t, "user-b", waitFor(t, done))
	require.Equal(t, "user-b", svc.Buffer().UserID)

	// A (older request) responds last; its late response must be discarded.
	bc.release["user-a"] <- &models.Progression{UserID: "user-a", XP: 1}
	require.Equal(t, "user-a", waitFor(t, done))
	require.Equal(t, "user-b", svc.Buffer().UserID)
}

func waitFor(t *testing.T, ch chan string) string {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel")
		return ""
	}
}
