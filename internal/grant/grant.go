// Package grant models the funding treadmill: a rotating pool of
// time-limited opportunities and the claimed applications being worked
// toward a probabilistic resolution.
package grant

import (
	"math/rand"

	"github.com/google/uuid"
)

// Opportunity is a visible, unclaimed grant listing. It expires when
// TimeRemaining hits zero.
type Opportunity struct {
	ID            string `json:"id"`
	Agency        Agency `json:"agency"`
	TimeRemaining int    `json:"timeRemaining"`
	TotalTime     int    `json:"totalTime"`
}

// Active is a claimed application. On expiry a single weighted roll
// against SuccessRate either pays out in [MinAward,MaxAward] or
// destroys dreams. A writer may staff at most one Active at a time.
type Active struct {
	ID               string  `json:"id"`
	Agency           Agency  `json:"agency"`
	TimeRemaining    int     `json:"timeRemaining"`
	TotalTime        int     `json:"totalTime"`
	SuccessRate      float64 `json:"successRateFinal"`
	AssignedWriterID string  `json:"assignedWriterId,omitempty"`
}

// NewOpportunity lists an agency with a randomized duration in
// [minTicks, maxTicks].
func NewOpportunity(rng *rand.Rand, a Agency, minTicks, maxTicks int) Opportunity {
	d := minTicks
	if maxTicks > minTicks {
		d += rng.Intn(maxTicks - minTicks + 1)
	}
	return Opportunity{
		ID:            uuid.NewString(),
		Agency:        a,
		TimeRemaining: d,
		TotalTime:     d,
	}
}

// Claim converts an opportunity into an active application.
func Claim(o Opportunity, workTime int, successRate float64, writerID string) Active {
	return Active{
		ID:               uuid.NewString(),
		Agency:           o.Agency,
		TimeRemaining:    workTime,
		TotalTime:        workTime,
		SuccessRate:      successRate,
		AssignedWriterID: writerID,
	}
}
