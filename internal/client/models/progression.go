package models

// ExperienceTier is the independently settable experience classification of
// a user. It is not derived from XP on the client.
type ExperienceTier string

const (
	TierBeginner     ExperienceTier = "BEGINNER"
	TierIntermediate ExperienceTier = "INTERMEDIATE"
	TierAdvanced     ExperienceTier = "ADVANCED"
)

// Valid reports whether t is one of the known tiers.
func (t ExperienceTier) Valid() bool {
	switch t {
	case TierBeginner, TierIntermediate, TierAdvanced:
		return true
	}
	return false
}

// LevelInfo is the backend-computed breakdown of a cumulative XP value under
// the platform's level curve. The client never recomputes any of these
// fields; the curve is backend-owned.
//
// Invariants (backend-guaranteed for any xp >= 0):
//
//	XPForCurrentLevel <= xp < XPForNextLevel
//	0 <= Progress <= 100
type LevelInfo struct {
	Level                   int `json:"level"`
	CurrentXP               int `json:"currentXP"`
	XPForCurrentLevel       int `json:"xpForCurrentLevel"`
	XPForNextLevel          int `json:"xpForNextLevel"`
	XPToNext                int `json:"xpToNext"`
	Progress                int `json:"progress"`
	XPInCurrentLevel        int `json:"xpInCurrentLevel"`
	XPNeededForCurrentLevel int `json:"xpNeededForCurrentLevel"`
}

// Progression is a user's stored XP/level/ELO state together with the
// backend's level breakdown as of the last fetch or persist.
type Progression struct {
	UserID         string         `json:"userId"`
	XP             int            `json:"xp"`
	Level          int            `json:"level"`
	EloRating      int            `json:"eloRating"`
	ExperienceTier ExperienceTier `json:"experienceLevel"`
	LevelInfo      *LevelInfo     `json:"levelInfo,omitempty"`
}

// Clone returns a deep copy of the progression record.
func (p *Progression) Clone() *Progression {
	if p == nil {
		return nil
	}
	out := *p
	if p.LevelInfo != nil {
		li := *p.LevelInfo
		out.LevelInfo = &li
	}
	return &out
}

// ProgressionUpdate is the payload persisted when editing a user's
// progression. LevelInfo is intentionally absent: the backend recomputes it
// from the submitted XP.
type ProgressionUpdate struct {
	XP             int            `json:"xp"`
	Level          int            `json:"level"`
	EloRating      int            `json:"eloRating"`
	ExperienceTier ExperienceTier `json:"experienceLevel"`
}
