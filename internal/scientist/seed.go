package scientist

import (
	"fmt"
	"math/rand"
)

var disciplines = []string{"biology", "chemistry", "physics", "engineering"}

func Disciplines() []string {
	return disciplines
}

var firstNames = []string{
	"Ada", "Rosalind", "Linus", "Barbara", "Werner", "Dorothy",
	"Nikola", "Marie", "Enrico", "Grace", "Erwin", "Lise",
}

var lastNamesByDiscipline = map[string][]string{
	"biology":     {"Finch", "Mendel", "Carson", "Pasteur", "Margulis"},
	"chemistry":   {"Boyle", "Curie", "Lavoisier", "Hodgkin", "Pauling"},
	"physics":     {"Bohr", "Noether", "Feynman", "Meitner", "Dirac"},
	"engineering": {"Brunel", "Lovelace", "Tesla", "Hopper", "Diesel"},
}

var traits = []string{
	"night owl",
	"coffee dependent",
	"meticulous",
	"grant magnet",
	"imposter syndrome",
	"tenure track optimist",
	"preprint enthusiast",
	"equipment whisperer",
}

func rollName(rng *rand.Rand, discipline string) string {
	last := lastNamesByDiscipline[discipline]
	if len(last) == 0 {
		last = lastNamesByDiscipline["biology"]
	}
	return fmt.Sprintf("Dr. %s %s", firstNames[rng.Intn(len(firstNames))], last[rng.Intn(len(last))])
}

func rollTraits(rng *rand.Rand) []string {
	n := 1 + rng.Intn(2)
	picked := make([]string, 0, n)
	seen := map[string]bool{}
	for len(picked) < n {
		tr := traits[rng.Intn(len(traits))]
		if seen[tr] {
			continue
		}
		seen[tr] = true
		picked = append(picked, tr)
	}
	return picked
}
