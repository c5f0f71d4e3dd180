package models

// Known game modes of the quiz platform.
const (
	ModeQuickDuel          = "QUICK_DUEL"
	ModeFastestFingerFirst = "FASTEST_FINGER_FIRST"
	ModePractice           = "PRACTICE"
	ModeTimeAttack         = "TIME_ATTACK"
	ModeGroupPlay          = "GROUP_PLAY"
)

// GameModeNames maps mode identifiers to operator-facing display names.
var GameModeNames = map[string]string{
	ModeQuickDuel:          "Quick Duel",
	ModeFastestFingerFirst: "Fastest Finger First",
	ModePractice:           "Practice Mode",
	ModeTimeAttack:         "Time Attack",
	ModeGroupPlay:          "Group Play",
}

// GameModeConfig is the per-mode XP/ELO reward configuration. Timestamps are
// kept as the backend's opaque strings; the client only displays them.
type GameModeConfig struct {
	ID           string `json:"id"`
	GameMode     string `json:"gameMode"`
	XPPerCorrect int    `json:"xpPerCorrect"`
	EloEnabled   bool   `json:"eloEnabled"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// GameModeConfigUpdate is a partial update of one mode's configuration.
// Nil fields are omitted from the request and left unchanged by the backend.
type GameModeConfigUpdate struct {
	XPPerCorrect *int  `json:"xpPerCorrect,omitempty"`
	EloEnabled   *bool `json:"eloEnabled,omitempty"`
}
