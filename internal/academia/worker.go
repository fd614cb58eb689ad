// Package academia models the lab's exploited workforce. Stress rises
// and hope falls every tick with no counteracting mechanic; that decay
// being one-way is intentional.
package academia

import (
	"math/rand"

	"github.com/google/uuid"
)

type Stats struct {
	Intelligence float64 `json:"intelligence"`
	Desperation  float64 `json:"desperation"`
	Caffeine     float64 `json:"caffeine"`
	Hope         float64 `json:"hope"`
}

type Worker struct {
	ID           string   `json:"id"`
	Type         string   `json:"workerType"`
	Name         string   `json:"name"`
	Skill        int      `json:"skill"`
	Stats        Stats    `json:"stats"`
	Traits       []string `json:"traits,omitempty"`
	Stress       float64  `json:"stress"`
	BurnoutCount int      `json:"burnoutCount"`
	MonthsWorked int      `json:"monthsWorked"`
}

// AtBreakingPoint reports whether the worker is eligible for attrition.
func (w Worker) AtBreakingPoint() bool {
	return w.Stress > 100 || w.Stats.Hope <= 5
}

// Output is the worker's research contribution for one tick.
func (w Worker) Output(productivity float64) float64 {
	return productivity * max(0, 1-w.Stress/150) * (w.Stats.Intelligence / 100)
}

// Roll mints a new hire of the given type. Skill lands in 3..7 and the
// stat bands lean hard into desperation.
func Roll(rng *rand.Rand, workerType string) Worker {
	return Worker{
		ID:    uuid.NewString(),
		Type:  workerType,
		Name:  rollName(rng),
		Skill: 3 + rng.Intn(5),
		Stats: Stats{
			Intelligence: float64(40 + rng.Intn(56)),
			Desperation:  float64(60 + rng.Intn(41)),
			Caffeine:     float64(50 + rng.Intn(51)),
			Hope:         float64(10 + rng.Intn(71)),
		},
		Traits: rollTraits(rng),
	}
}
