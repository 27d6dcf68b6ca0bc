package network

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"

	"github.com/nparse/nanta/acceptor"
	"github.com/nparse/nanta/action"
)

// ArcType classifies an Arc's effect on the traveller (spec §4.2,
// "Arc-type semantics").
type ArcType int8

const (
	Simple ArcType = iota
	Invoke
	Extend
	Positive
	Negative
)

func (t ArcType) String() string {
	switch t {
	case Simple:
		return "simple"
	case Invoke:
		return "invoke"
	case Extend:
		return "extend"
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	}
	return "?"
}

// Label is an attached semantic action plus an integer tag (spec §3,
// "Label"). A Label is actual when it carries an executable Action or a
// non-zero Tag; trace enumeration skips non-actual labels.
type Label struct {
	Tag    int
	Action action.Expr
}

// IsActual reports whether l carries an executable action or a non-zero
// tag (spec §3, "Label").
func (l Label) IsActual() bool {
	return l.Action != nil || l.Tag != 0
}

// Arc is a labeled transition from one Node to another (spec §3, "Arc").
// Arcs are immutable and owned by their source Node's bunch.
type Arc struct {
	Target     *Node
	Acceptor   acceptor.Acceptor
	Type       ArcType
	Label      Label
	Priority   int
	Entangled  int // entanglement-group id, 0 = not entangled
	id         uint64
}

// Node is a vertex in the acceptor network (spec §3, "Node"). Its bunch
// of outgoing Arcs is held in an arraylist.List, the outgoing arcs of a
// grammar node.
type Node struct {
	Name        string
	Endpoint    bool
	Entangled   int // entanglement group id, 0 = not entangled
	bunch       *arraylist.List
	id          uint64
}

var nodeSeq uint64
var arcSeq uint64

// NewNode creates a Node with an empty bunch.
func NewNode(name string) *Node {
	nodeSeq++
	return &Node{Name: name, bunch: arraylist.New(), id: nodeSeq}
}

// ID returns a stable, monotonically-assigned identifier, used by
// network-level tooling (graph dumps, dedup) that needs identity
// independent of a Node's address.
func (n *Node) ID() uint64 { return n.id }

// AddArc appends arc to n's bunch and returns it for chaining.
func (n *Node) AddArc(target *Node, acc acceptor.Acceptor, typ ArcType, label Label, priority int, entangled int) *Arc {
	arcSeq++
	a := &Arc{
		Target:    target,
		Acceptor:  acc,
		Type:      typ,
		Label:     label,
		Priority:  priority,
		Entangled: entangled,
		id:        arcSeq,
	}
	n.bunch.Add(a)
	return a
}

// ID returns a's stable identifier, used by the traveller's
// left-recursion guard to fingerprint "same arc, same range" re-entry
// without retaining live pointers across pool resets (see SPEC_FULL.md
// §11, structhash wiring).
func (a *Arc) ID() uint64 { return a.id }

// Bunch returns the subset of n's outgoing arcs starting at index from,
// used by the traveller to track a State's "remaining bunch" as it
// iterates (spec §3, "its remaining bunch").
func (n *Node) Bunch(from int) []*Arc {
	values := n.bunch.Values()
	if from >= len(values) {
		return nil
	}
	out := make([]*Arc, 0, len(values)-from)
	for _, v := range values[from:] {
		out = append(out, v.(*Arc))
	}
	return out
}

// NumArcs returns the size of n's bunch.
func (n *Node) NumArcs() int { return n.bunch.Size() }

// SortByPriority orders a slice of Arcs in place by descending Priority.
func SortByPriority(arcs []*Arc) {
	tmp := arcsAsInterfaces(arcs)
	utils.Sort(tmp, func(a, b interface{}) int {
		aa, bb := a.(*Arc), b.(*Arc)
		return bb.Priority - aa.Priority
	})
	for i, v := range tmp {
		arcs[i] = v.(*Arc)
	}
}

func arcsAsInterfaces(arcs []*Arc) []interface{} {
	out := make([]interface{}, len(arcs))
	for i, a := range arcs {
		out[i] = a
	}
	return out
}
