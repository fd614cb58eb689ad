package equipment

// Kind describes a purchasable instrument model.
type Kind struct {
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Cost  float64 `json:"cost"`
}

var kinds = []Kind{
	{Name: "microscope", Label: "Microscope", Cost: 5000},
	{Name: "centrifuge", Label: "Centrifuge", Cost: 8000},
	{Name: "computer", Label: "Compute Cluster", Cost: 3000},
	{Name: "pcr", Label: "PCR Machine", Cost: 15000},
	{Name: "sequencer", Label: "Gene Sequencer", Cost: 50000},
	{Name: "spectrometer", Label: "Mass Spectrometer", Cost: 75000},
	{Name: "accelerator", Label: "Particle Accelerator", Cost: 200000},
}

func Kinds() []Kind {
	return kinds
}

func KindByName(name string) (Kind, bool) {
	for _, k := range kinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// StartingUnlocks are available without any research.
func StartingUnlocks() []string {
	return []string{"microscope", "computer"}
}
