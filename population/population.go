package population

import (
	"sort"

	"github.com/katalvlaran/hgsrr/individual"
)

// Pop holds the feasible and infeasible subpopulations plus the persistent
// global best and the adaptive penalty controller's state.
type Pop struct {
	opts Options
	n    int // customer count, needed by diversity's broken-pairs distance

	Feasible   []*individual.Individual
	Infeasible []*individual.Individual
	Best       *individual.Individual

	penalty float64

	recentFeasible []bool // sliding window of insert outcomes for the penalty controller
}

// New returns an empty Pop for an instance of n customers, with the
// penalty controller starting at initialPenalty.
func New(opts Options, n int, initialPenalty float64) *Pop {
	return &Pop{opts: opts, n: n, penalty: initialPenalty}
}

// Penalty returns the controller's current capacity-violation penalty.
func (pop *Pop) Penalty() float64 { return pop.penalty }

// Insert routes ind to the feasible or infeasible set by its
// CapacityExcess, updates the global best when ind is feasible and
// strictly better, records the outcome for the penalty controller, and
// refreshes the touched set's diversity and biased fitness ranks.
func (pop *Pop) Insert(ind *individual.Individual) {
	feasible := ind.CapacityExcess == 0
	if feasible {
		pop.Feasible = append(pop.Feasible, ind)
		if pop.Best == nil || ind.PenalisedCost < pop.Best.PenalisedCost {
			pop.Best = ind.Clone()
		}
	} else {
		pop.Infeasible = append(pop.Infeasible, ind)
	}

	pop.recentFeasible = append(pop.recentFeasible, feasible)
	if len(pop.recentFeasible) > pop.opts.ManageEvery {
		pop.recentFeasible = pop.recentFeasible[len(pop.recentFeasible)-pop.opts.ManageEvery:]
	}

	pop.refreshSet(feasible)
}

// refreshSet recomputes diversity and biased fitness for the feasible or
// infeasible set.
func (pop *Pop) refreshSet(feasible bool) {
	set := pop.Infeasible
	if feasible {
		set = pop.Feasible
	}
	refreshDiversity(set, pop.n, pop.opts.NumClosest)
	rankBiasedFitness(set, pop.opts.NumElites)
}

// rankBiasedFitness assigns BiasedFitness to every member of set:
// bf(i) = costRank(i)/|P| + (1 - nElites/|P|) * (1 - divRank(i)/|P|),
// with cost ranked ascending (lower penalised cost is better) and
// diversity ranked descending (more diverse individuals rank better).
func rankBiasedFitness(set []*individual.Individual, nElites int) {
	m := len(set)
	if m == 0 {
		return
	}
	if m == 1 {
		set[0].BiasedFitness = 0
		return
	}

	byCost := append([]*individual.Individual(nil), set...)
	sort.Slice(byCost, func(i, j int) bool { return byCost[i].PenalisedCost < byCost[j].PenalisedCost })
	costRank := make(map[*individual.Individual]int, m)
	for i, ind := range byCost {
		costRank[ind] = i
	}

	byDiversity := append([]*individual.Individual(nil), set...)
	sort.Slice(byDiversity, func(i, j int) bool { return byDiversity[i].Diversity > byDiversity[j].Diversity })
	divRank := make(map[*individual.Individual]int, m)
	for i, ind := range byDiversity {
		divRank[ind] = i
	}

	diversityWeight := 1 - float64(nElites)/float64(m)
	for _, ind := range set {
		cr := float64(costRank[ind]) / float64(m)
		dr := float64(divRank[ind]) / float64(m)
		ind.BiasedFitness = cr + diversityWeight*(1-dr)
	}
}

// TrimToMu applies survivor selection to both subpopulations independently:
// once a set exceeds Mu+Lambda, repeatedly drop the worst-biased-fitness
// member, preferring an exact clone (broken-pairs distance 0 to some other
// member) over a non-clone when both are eligible for removal, until the
// set is back down to Mu.
func (pop *Pop) TrimToMu() {
	pop.Feasible = trimSet(pop.Feasible, pop.opts, pop.n)
	pop.Infeasible = trimSet(pop.Infeasible, pop.opts, pop.n)
}

func trimSet(set []*individual.Individual, opts Options, n int) []*individual.Individual {
	trimming := len(set) > opts.Mu+opts.Lambda
	for trimming && len(set) > opts.Mu {
		refreshDiversity(set, n, opts.NumClosest)
		rankBiasedFitness(set, opts.NumElites)

		victim := worstPreferringClones(set, n)
		set = removeAt(set, victim)
	}
	if len(set) > 0 {
		refreshDiversity(set, n, opts.NumClosest)
		rankBiasedFitness(set, opts.NumElites)
	}
	return set
}

// worstPreferringClones returns the index of the member to remove: the
// worst-biased-fitness clone (distance 0 to some other member) if any
// clone exists, else the overall worst-biased-fitness member.
func worstPreferringClones(set []*individual.Individual, n int) int {
	worstClone, worstCloneFit := -1, -1.0
	worstAny, worstAnyFit := 0, set[0].BiasedFitness

	for i, ind := range set {
		if ind.BiasedFitness > worstAnyFit {
			worstAnyFit = ind.BiasedFitness
			worstAny = i
		}
		if isClone(ind, set, i, n) && ind.BiasedFitness > worstCloneFit {
			worstCloneFit = ind.BiasedFitness
			worstClone = i
		}
	}

	if worstClone >= 0 {
		return worstClone
	}
	return worstAny
}

// isClone reports whether set[idx] has broken-pairs distance 0 to any
// other member of set.
func isClone(ind *individual.Individual, set []*individual.Individual, idx, n int) bool {
	for j, other := range set {
		if j == idx {
			continue
		}
		if brokenPairsDistance(ind, other, n) == 0 {
			return true
		}
	}
	return false
}

func removeAt(set []*individual.Individual, idx int) []*individual.Individual {
	out := append([]*individual.Individual(nil), set[:idx]...)
	return append(out, set[idx+1:]...)
}

// Restart clears both subpopulations, preserving Best and the current
// penalty, per spec.md §4.5's restart rule; the penalty controller's
// window of recent insert outcomes is cleared as well.
func (pop *Pop) Restart() {
	pop.Feasible = nil
	pop.Infeasible = nil
	pop.recentFeasible = nil
}

// Union returns both subpopulations concatenated, used by parent selection
// to draw binary tournaments over the whole population.
func (pop *Pop) Union() []*individual.Individual {
	out := make([]*individual.Individual, 0, len(pop.Feasible)+len(pop.Infeasible))
	out = append(out, pop.Feasible...)
	out = append(out, pop.Infeasible...)
	return out
}
