package game

import "errors"

// Command rejection taxonomy. Funding and research shortfalls come
// from the econ package; everything else lives here.
var (
	ErrInvalidReference = errors.New("unknown entity reference")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrSlotOccupied     = errors.New("equipment slot occupied")
	ErrAlreadyAssigned  = errors.New("scientist already assigned")
	ErrEquipmentLocked  = errors.New("equipment kind not unlocked")
	ErrWritersBusy      = errors.New("all grant writers are busy")
	ErrNoPendingCrisis  = errors.New("no crisis awaiting resolution")
	ErrResearchMaxed    = errors.New("research branch at max level")
)
