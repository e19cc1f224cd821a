package tune

import (
	"fmt"

	"github.com/MaxHalford/eaopt"
)

// tournamentElite is the eaopt Model driving the genetic search:
// tournament-select parents, cross and mutate the rest of the
// population, and always carry the top Elite individuals through
// unchanged.
type tournamentElite struct {
	Selector  eaopt.Selector
	Elite     uint
	MutRate   float64
	CrossRate float64
}

func (m tournamentElite) Apply(pop *eaopt.Population) error {
	if pop == nil || len(pop.Individuals) == 0 {
		return nil
	}
	elite := m.Elite
	if elite > uint(len(pop.Individuals)) {
		elite = uint(len(pop.Individuals))
	}

	pop.Individuals.SortByFitness()

	var elites eaopt.Individuals
	if elite > 0 {
		elites = pop.Individuals[:elite].Clone(pop.RNG)
	}

	offspringCount := uint(len(pop.Individuals)) - elite
	if offspringCount == 0 {
		copy(pop.Individuals, elites)
		return nil
	}

	offsprings := make(eaopt.Individuals, offspringCount)
	i := 0
	for i < len(offsprings) {
		selected, _, err := m.Selector.Apply(2, pop.Individuals, pop.RNG)
		if err != nil {
			return err
		}
		if pop.RNG.Float64() < m.CrossRate {
			selected[0].Crossover(selected[1], pop.RNG)
		}
		offsprings[i] = selected[0]
		i++
		if i < len(offsprings) {
			offsprings[i] = selected[1]
			i++
		}
	}
	if m.MutRate > 0 {
		offsprings.Mutate(m.MutRate, pop.RNG)
	}

	copy(pop.Individuals, elites)
	copy(pop.Individuals[elite:], offsprings)
	return nil
}

func (m tournamentElite) Validate() error {
	if m.Selector == nil {
		return fmt.Errorf("tune: tournamentElite needs a Selector")
	}
	if err := m.Selector.Validate(); err != nil {
		return err
	}
	if m.MutRate < 0 || m.MutRate > 1 {
		return fmt.Errorf("tune: mutation rate %f out of [0,1]", m.MutRate)
	}
	if m.CrossRate < 0 || m.CrossRate > 1 {
		return fmt.Errorf("tune: crossover rate %f out of [0,1]", m.CrossRate)
	}
	return nil
}
