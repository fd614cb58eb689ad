package equipment

import "github.com/google/uuid"

// Equipment is a purchased lab instrument occupying one slot. It is
// never destroyed, only unassigned; an experiment run is tracked by
// ExperimentProgress and clears back to zero on completion or manual
// unassignment.
type Equipment struct {
	ID                  string  `json:"id"`
	Kind                string  `json:"kind"`
	SlotIndex           int     `json:"slotIndex"`
	Level               int     `json:"level"`
	Condition           float64 `json:"condition"`
	AssignedScientistID string  `json:"assignedScientistId,omitempty"`
	ExperimentProgress  float64 `json:"experimentProgress"`
}

func New(kind string, slotIndex int) Equipment {
	return Equipment{
		ID:        uuid.NewString(),
		Kind:      kind,
		SlotIndex: slotIndex,
		Level:     1,
		Condition: 100,
	}
}

func (e Equipment) Running() bool {
	return e.AssignedScientistID != ""
}

// ClearRun resets the experiment and frees the instrument.
func (e *Equipment) ClearRun() {
	e.ExperimentProgress = 0
	e.AssignedScientistID = ""
}
