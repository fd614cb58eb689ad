package academia

import "math/rand"

const TypeGrantWriter = "grant_writer"

// WorkerType is a hirable role. Stipend is debited on the stipend
// period regardless of skill; productivity and stress rate drive the
// per-tick simulation.
type WorkerType struct {
	Name         string  `json:"name"`
	Label        string  `json:"label"`
	HireCost     float64 `json:"hireCost"`
	Stipend      float64 `json:"stipend"`
	Productivity float64 `json:"productivity"`
	StressRate   float64 `json:"stressRate"`
}

var workerTypes = []WorkerType{
	{Name: TypeGrantWriter, Label: "Grant Writer", HireCost: 8000, Stipend: 1200, Productivity: 0.4, StressRate: 1.0},
	{Name: "lab_manager", Label: "Lab Manager", HireCost: 10000, Stipend: 1500, Productivity: 0.7, StressRate: 0.9},
	{Name: "technician", Label: "Technician", HireCost: 6000, Stipend: 900, Productivity: 0.8, StressRate: 1.0},
	{Name: "admin_assistant", Label: "Admin Assistant", HireCost: 5000, Stipend: 800, Productivity: 0.5, StressRate: 1.2},
	{Name: "phd_student", Label: "PhD Student", HireCost: 0, Stipend: 2500, Productivity: 0.8, StressRate: 1.0},
	{Name: "postdoc", Label: "Postdoc", HireCost: 0, Stipend: 4500, Productivity: 1.0, StressRate: 1.2},
	{Name: "adjunct", Label: "Adjunct Professor", HireCost: 0, Stipend: 1000, Productivity: 0.6, StressRate: 1.5},
	{Name: "undergrad", Label: "Undergrad Volunteer", HireCost: 0, Stipend: 0, Productivity: 0.3, StressRate: 0.5},
}

func WorkerTypes() []WorkerType {
	return workerTypes
}

func TypeByName(name string) (WorkerType, bool) {
	for _, wt := range workerTypes {
		if wt.Name == name {
			return wt, true
		}
	}
	return WorkerType{}, false
}

var workerNames = []string{
	"Sam Ortiz", "Priya Natarajan", "Jordan Blake", "Wei Chen",
	"Fatima al-Rashid", "Casey Morgan", "Lena Kovacs", "Diego Reyes",
	"Aoife Byrne", "Tomas Novak", "Ruth Adler", "Kofi Mensah",
}

var workerTraits = []string{
	"survives on vending machine food",
	"answers email at 3am",
	"has a backup thesis topic",
	"cites own rejection letters",
	"knows where the good pipettes are hidden",
	"unionization curious",
}

func rollName(rng *rand.Rand) string {
	return workerNames[rng.Intn(len(workerNames))]
}

func rollTraits(rng *rand.Rand) []string {
	return []string{workerTraits[rng.Intn(len(workerTraits))]}
}
