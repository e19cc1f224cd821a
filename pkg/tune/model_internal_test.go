package tune

import (
	"testing"

	"github.com/MaxHalford/eaopt"
	"github.com/stretchr/testify/require"
)

func TestTournamentEliteValidateRequiresASelector(t *testing.T) {
	m := tournamentElite{MutRate: 0.3, CrossRate: 0.7}
	require.Error(t, m.Validate())
}

func TestTournamentEliteValidateRejectsRatesOutsideUnitRange(t *testing.T) {
	sel := eaopt.SelTournament{NContestants: 3}

	require.Error(t, tournamentElite{Selector: sel, MutRate: -0.1, CrossRate: 0.5}.Validate())
	require.Error(t, tournamentElite{Selector: sel, MutRate: 1.1, CrossRate: 0.5}.Validate())
	require.Error(t, tournamentElite{Selector: sel, MutRate: 0.5, CrossRate: -0.1}.Validate())
	require.Error(t, tournamentElite{Selector: sel, MutRate: 0.5, CrossRate: 1.1}.Validate())
}

func TestTournamentEliteValidateAcceptsSaneConfig(t *testing.T) {
	m := tournamentElite{
		Selector:  eaopt.SelTournament{NContestants: 3},
		Elite:     2,
		MutRate:   0.3,
		CrossRate: 0.7,
	}
	require.NoError(t, m.Validate())
}

func TestTournamentEliteApplyOnEmptyPopulationIsANoOp(t *testing.T) {
	m := tournamentElite{Selector: eaopt.SelTournament{NContestants: 3}}
	require.NoError(t, m.Apply(nil))
	require.NoError(t, m.Apply(&eaopt.Population{}))
}
