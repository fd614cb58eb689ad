package game

type Branch string

const (
	BranchBiology     Branch = "biology"
	BranchChemistry   Branch = "chemistry"
	BranchPhysics     Branch = "physics"
	BranchEngineering Branch = "engineering"
)

func Branches() []Branch {
	return []Branch{BranchBiology, BranchChemistry, BranchPhysics, BranchEngineering}
}

type ResearchState struct {
	Level    int     `json:"level"`
	Progress float64 `json:"progress"`
}

const maxResearchLevel = 4

// researchCosts[n] is the research-point price of upgrading from
// level n to n+1.
var researchCosts = [maxResearchLevel]float64{50, 150, 400, 1000}

// Reaching a level in a branch can unlock an equipment kind.
var researchUnlocks = map[Branch]map[int]string{
	BranchBiology:   {1: "centrifuge", 2: "pcr", 3: "sequencer"},
	BranchChemistry: {3: "spectrometer"},
	BranchPhysics:   {4: "accelerator"},
}

// UpgradeCost returns the price of the next level, or false when the
// branch is maxed.
func UpgradeCost(currentLevel int) (float64, bool) {
	if currentLevel < 0 || currentLevel >= maxResearchLevel {
		return 0, false
	}
	return researchCosts[currentLevel], true
}

func freshResearch() map[Branch]ResearchState {
	m := make(map[Branch]ResearchState, len(Branches()))
	for _, b := range Branches() {
		m[b] = ResearchState{}
	}
	return m
}
