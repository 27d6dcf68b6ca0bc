package traveller

import (
	"github.com/nparse/nanta/pool"
)

// spawner pairs a deferred State with its entangled group's root and the
// arc priority it was spawned under, mirroring the original's spawner<M_>
// (spec §4.6, "Entanglement resolution").
type spawner struct {
	idx      pool.Index
	root     pool.Index
	priority int
}

// resolveEntanglement finds, for every deferred State, the ancestor State
// whose arc closes the entanglement group it belongs to, sorts them with
// sortSpawners, and pushes back onto the queue the States of the first
// root that share its lowest priority number (spec §4.6, "between
// convergence passes"). For every other root, only the States at that
// root's lowest priority number are deferred again; all other States are
// dropped.
func (t *Traveller) resolveEntanglement() {
	spawners := make([]spawner, 0, len(t.deferred))
	for _, idx := range t.deferred {
		s := t.states.Get(idx)
		eid := s.Node.Entangled
		p := idx
		level := 0
		for p != pool.NoIndex {
			ps := t.states.Get(p)
			if ps.ProducedBy != nil && ps.ProducedBy.Target.Entangled == eid {
				level++
			}
			if ps.ProducedBy != nil && ps.ProducedBy.Entangled == eid {
				level--
			}
			if level == 0 {
				break
			}
			p = ps.Ancestor
		}
		root := pool.NoIndex
		priority := 0
		if p != pool.NoIndex {
			ps := t.states.Get(p)
			root = ps.Ancestor
			if ps.ProducedBy != nil {
				priority = ps.ProducedBy.Priority
			}
		}
		spawners = append(spawners, spawner{idx: idx, root: root, priority: priority})
	}
	t.deferred = nil

	sortSpawners(spawners)
	if len(spawners) == 0 {
		return
	}

	t.queue.pushBack(spawners[0].idx)
	root := spawners[0].root
	priority := spawners[0].priority
	j := 1
	for j < len(spawners) && spawners[j].root == root {
		if spawners[j].priority == priority {
			t.queue.pushBack(spawners[j].idx)
		}
		j++
	}

	for ; j < len(spawners); j++ {
		if spawners[j].root != root {
			root = spawners[j].root
			priority = spawners[j].priority
		}
		if spawners[j].priority == priority {
			t.deferred = append(t.deferred, spawners[j].idx)
		}
	}
}

// sortSpawners orders by (root descending, priority ascending), matching
// the original's spawner::operator< (spec §4.6).
func sortSpawners(s []spawner) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && spawnerLess(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

func spawnerLess(a, b spawner) bool {
	if a.root != b.root {
		return a.root > b.root
	}
	return a.priority < b.priority
}
