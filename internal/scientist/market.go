package scientist

import (
	"math/rand"

	"github.com/google/uuid"
)

// Candidate is an unhired scientist on the job market. Hiring converts
// it into a Scientist and debits Cost.
type Candidate struct {
	Name       string   `json:"name"`
	Discipline string   `json:"discipline"`
	Quality    int      `json:"quality"`
	Cost       float64  `json:"cost"`
	Stats      Stats    `json:"stats"`
	Traits     []string `json:"traits,omitempty"`
}

const baseHireCost = 5000

// quality tier -> cost multiplier and stat roll range
var qualityTiers = []struct {
	multiplier float64
	statMin    float64
	statMax    float64
}{
	{1, 30, 70},
	{2, 50, 85},
	{4, 70, 100},
}

// RollCandidates generates n market candidates. Higher quality tiers
// cost more and roll stats in a higher band.
func RollCandidates(rng *rand.Rand, n int) []Candidate {
	out := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		quality := 1 + rng.Intn(len(qualityTiers))
		tier := qualityTiers[quality-1]
		discipline := Disciplines()[rng.Intn(len(Disciplines()))]
		out = append(out, Candidate{
			Name:       rollName(rng, discipline),
			Discipline: discipline,
			Quality:    quality,
			Cost:       baseHireCost * tier.multiplier,
			Stats: Stats{
				Intelligence: rollStat(rng, tier.statMin, tier.statMax),
				Speed:        rollStat(rng, tier.statMin, tier.statMax),
				Luck:         rollStat(rng, tier.statMin, tier.statMax),
			},
			Traits: rollTraits(rng),
		})
	}
	return out
}

// NewFromCandidate mints the hired Scientist record.
func NewFromCandidate(c Candidate) Scientist {
	return Scientist{
		ID:         uuid.NewString(),
		Discipline: c.Discipline,
		Name:       c.Name,
		Level:      1,
		XP:         0,
		Stats:      c.Stats,
		Traits:     c.Traits,
	}
}

func rollStat(rng *rand.Rand, lo, hi float64) float64 {
	return float64(int(lo) + rng.Intn(int(hi-lo)+1))
}
