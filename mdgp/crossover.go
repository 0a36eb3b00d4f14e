package mdgp

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/partition/group"
)

// Crossover recombines two parent solutions into one feasible offspring
// (§4.5): groups are inherited whole from whichever parent currently has
// the most internally diverse remaining group, offspring groups that
// cannot admit a donated group receive a random partial install, and three
// repair passes (down, up, fill) restore feasibility. The offspring is
// returned with Cost == 0; callers compute Cost by rebuilding a
// DeltaMatrix against it (the repair passes do not maintain Δ).
func Crossover(d *group.Dissimilarity, bounds group.Bounds, p1, p2 *group.Solution, rng *rand.Rand) (*group.Solution, error) {
	n := len(p1.Assignment)
	k := bounds.K()

	members := [2][][]int{groupMembers(p1, k), groupMembers(p2, k)}
	gDiv := [2][]float64{groupDiversity(d, members[0]), groupDiversity(d, members[1])}
	consumed := [2][]bool{make([]bool, k), make([]bool, k)}

	offAssign := make([]int, n)
	for i := range offAssign {
		offAssign[i] = -1
	}
	offSizes := make([]int, k)
	assigned := make([]bool, k) // offspring group already installed
	placed := make([]bool, n)  // item already placed in offspring
	var pool []int

	allConsumed := func(p int) bool {
		for g := 0; g < k; g++ {
			if !consumed[p][g] {
				return false
			}
		}
		return true
	}

	for iter := 0; iter < k; iter++ {
		donor := rng.Intn(2)
		if allConsumed(donor) {
			donor = 1 - donor
		}
		if allConsumed(donor) {
			break // both parents exhausted (can happen if k==0)
		}

		gStar := -1
		best := math.Inf(-1)
		for g := 0; g < k; g++ {
			if consumed[donor][g] {
				continue
			}
			if gDiv[donor][g] > best {
				best = gDiv[donor][g]
				gStar = g
			}
		}
		consumed[donor][gStar] = true

		var s []int
		for _, i := range members[donor][gStar] {
			if !placed[i] {
				s = append(s, i)
			}
		}
		if len(s) == 0 {
			continue
		}

		var fitting []int
		for g := 0; g < k; g++ {
			if !assigned[g] && bounds.UB[g] >= len(s) {
				fitting = append(fitting, g)
			}
		}

		if len(fitting) > 0 {
			dest := fitting[rng.Intn(len(fitting))]
			for _, i := range s {
				offAssign[i] = dest
				placed[i] = true
			}
			offSizes[dest] = len(s)
			assigned[dest] = true
			continue
		}

		// No offspring group can admit the whole donated group: install a
		// random subset into the nearest-fit unassigned group, drop the rest.
		nearest := -1
		nearestDeficit := math.MaxInt
		for g := 0; g < k; g++ {
			if assigned[g] {
				continue
			}
			deficit := len(s) - bounds.UB[g]
			if deficit > 0 && deficit < nearestDeficit {
				nearestDeficit = deficit
				nearest = g
			}
		}
		if nearest < 0 {
			// every group already assigned; drop everything to the pool
			pool = append(pool, s...)
			continue
		}

		group.ShuffleIntsInPlace(s, rng)
		room := bounds.UB[nearest]
		for idx, i := range s {
			if idx < room {
				offAssign[i] = nearest
				placed[i] = true
			} else {
				pool = append(pool, i)
			}
		}
		offSizes[nearest] = room
		assigned[nearest] = true
	}

	// Any item no parent-group-donation round placed (because its donor
	// group had already been partially consumed by an earlier pick from the
	// other parent) goes to the unassigned pool.
	for i := 0; i < n; i++ {
		if !placed[i] {
			pool = append(pool, i)
			placed[i] = true
		}
	}

	repairDown(bounds, offSizes, offAssign, &pool, rng)
	repairUp(bounds, offSizes, offAssign, &pool, rng)
	fill(bounds, offSizes, offAssign, &pool, rng)

	return group.NewSolution(offAssign, n, bounds)
}

func groupMembers(sol *group.Solution, k int) [][]int {
	members := make([][]int, k)
	for i, g := range sol.Assignment {
		members[g] = append(members[g], i)
	}
	return members
}

// groupDiversity computes gDiv[g] = Σ_{i<j ∈ g} D[i][j] for every group g,
// the per-group internal-diversity metric crossover uses to pick a donor.
func groupDiversity(d *group.Dissimilarity, members [][]int) []float64 {
	gDiv := make([]float64, len(members))
	for g, items := range members {
		var sum float64
		for a := 0; a < len(items); a++ {
			for b := a + 1; b < len(items); b++ {
				sum += d.At(items[a], items[b])
			}
		}
		gDiv[g] = sum
	}
	return gDiv
}

func repairDown(bounds group.Bounds, sizes []int, assign []int, pool *[]int, rng *rand.Rand) {
	k := bounds.K()
	totalDeficit := func() int {
		d := 0
		for g := 0; g < k; g++ {
			if sizes[g] < bounds.LB[g] {
				d += bounds.LB[g] - sizes[g]
			}
		}
		return d
	}

	for totalDeficit() > len(*pool) {
		donors := make([]int, 0, k)
		for g := 0; g < k; g++ {
			if sizes[g] > bounds.LB[g] {
				donors = append(donors, g)
			}
		}
		if len(donors) == 0 {
			break
		}
		g := donors[rng.Intn(len(donors))]
		members := itemsInGroup(assign, g)
		victim := members[rng.Intn(len(members))]
		assign[victim] = -1
		sizes[g]--
		*pool = append(*pool, victim)
	}
}

func repairUp(bounds group.Bounds, sizes []int, assign []int, pool *[]int, rng *rand.Rand) {
	k := bounds.K()
	for g := 0; g < k; g++ {
		for sizes[g] < bounds.LB[g] && len(*pool) > 0 {
			idx := rng.Intn(len(*pool))
			item := (*pool)[idx]
			*pool = append((*pool)[:idx], (*pool)[idx+1:]...)
			assign[item] = g
			sizes[g]++
		}
	}
}

func fill(bounds group.Bounds, sizes []int, assign []int, pool *[]int, rng *rand.Rand) {
	k := bounds.K()
	for len(*pool) > 0 {
		var room []int
		for g := 0; g < k; g++ {
			if sizes[g] < bounds.UB[g] {
				room = append(room, g)
			}
		}
		if len(room) == 0 {
			break
		}
		idx := rng.Intn(len(*pool))
		item := (*pool)[idx]
		*pool = append((*pool)[:idx], (*pool)[idx+1:]...)
		g := room[rng.Intn(len(room))]
		assign[item] = g
		sizes[g]++
	}
}

func itemsInGroup(assign []int, g int) []int {
	var out []int
	for i, ag := range assign {
		if ag == g {
			out = append(out, i)
		}
	}
	return out
}
