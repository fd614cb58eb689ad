package scientist

import "math/rand"

type Stats struct {
	Intelligence float64 `json:"intelligence"`
	Speed        float64 `json:"speed"`
	Luck         float64 `json:"luck"`
}

// Scientist is a hired researcher. At most one scientist occupies one
// equipment slot at a time; the assignment is enforced by the engine,
// not here.
type Scientist struct {
	ID                  string   `json:"id"`
	Discipline          string   `json:"discipline"`
	Name                string   `json:"name"`
	Level               int      `json:"level"`
	XP                  float64  `json:"xp"`
	Stats               Stats    `json:"stats"`
	Traits              []string `json:"traits,omitempty"`
	Exhausted           bool     `json:"exhausted"`
	ExhaustionTimer     int      `json:"exhaustionTimer"`
	AssignedEquipmentID string   `json:"assignedEquipmentId,omitempty"`
}

func (s Scientist) Working() bool {
	return s.AssignedEquipmentID != "" && !s.Exhausted
}

// GainXP adds experience and handles the level-up threshold
// (xp >= level*100). Leveling re-rolls each stat upward by a small
// bounded amount, capped at 100. Returns true when a level was gained.
func (s *Scientist) GainXP(amount float64, rng *rand.Rand) bool {
	s.XP += amount
	if s.XP < float64(s.Level*100) {
		return false
	}
	s.Level++
	s.XP = 0
	s.Stats.Intelligence = bumpStat(s.Stats.Intelligence, rng)
	s.Stats.Speed = bumpStat(s.Stats.Speed, rng)
	s.Stats.Luck = bumpStat(s.Stats.Luck, rng)
	return true
}

func bumpStat(v float64, rng *rand.Rand) float64 {
	return min(100, v+float64(1+rng.Intn(5)))
}
