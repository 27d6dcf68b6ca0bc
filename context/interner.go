package context

import (
	"github.com/cnf/structhash"
)

// Key is a canonical, cheaply-comparable identifier for a context
// variable name (spec §4.3, "Key equality").
type Key int32

// Interner canonicalizes variable-name strings into small integer Keys.
// It replaces the module-global hash table the original implementation
// used (see spec.md §9, "Global state") with an explicit value owned by
// whichever Engine creates the root Context, so that multiple
// independent parsers can coexist in one process without sharing symbol
// identity.
//
// Names are hashed into a bucket digest first via
// github.com/cnf/structhash; an actual string comparison resolves any
// bucket collision, which is the "collision is detected by comparing
// interned strings" behavior spec.md calls for.
type Interner struct {
	buckets map[string][]internEntry
	names   []string
}

type internEntry struct {
	name string
	key  Key
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{buckets: make(map[string][]internEntry)}
}

// digest computes a cheap fingerprint bucket for name.
func digest(name string) string {
	h, err := structhash.Hash(name, 1)
	if err != nil {
		// structhash only fails on unsupported reflect kinds; a string
		// is always supported, so this path is unreachable in practice.
		return name
	}
	return h
}

// Intern returns the canonical Key for name, creating one on first use.
func (in *Interner) Intern(name string) Key {
	d := digest(name)
	for _, e := range in.buckets[d] {
		if e.name == name {
			return e.key
		}
	}
	k := Key(len(in.names))
	in.names = append(in.names, name)
	in.buckets[d] = append(in.buckets[d], internEntry{name, k})
	return k
}

// Name returns the string a Key was interned from.
func (in *Interner) Name(k Key) string {
	if int(k) < 0 || int(k) >= len(in.names) {
		return ""
	}
	return in.names[k]
}

// IsInternal reports whether the key's name carries the underscore
// prefix convention of spec.md §4.3 ("An underscore prefix reserves the
// least-significant hash bit to signal 'internal' keys").
//
// Open question resolution (see DESIGN.md): rather than stealing a bit
// from the hash as the original implementation did, this rewrite stores
// visibility as an explicit predicate over the interned name, which is
// equivalent in observable behavior but does not entangle key identity
// with a presentation concern.
func (in *Interner) IsInternal(k Key) bool {
	name := in.Name(k)
	return len(name) > 0 && name[0] == '_'
}
