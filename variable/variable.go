package variable

import (
	"fmt"
	"sort"

	"github.com/mitchellh/hashstructure/v2"
)

// Kind tags the semantic role a Variable plays in a complexity
// expression. Two Variables with equal Name but different Kind are not
// equal — the front-end owns disambiguation.
type Kind int

const (
	// KindInputSize is the generic "n" — primary problem size.
	KindInputSize Kind = iota
	// KindVertexCount is "V" in graph algorithms.
	KindVertexCount
	// KindEdgeCount is "E" in graph algorithms.
	KindEdgeCount
	// KindStringLength is the length of a string/sequence input.
	KindStringLength
	// KindProcessorCount is "p", the parallel processor count.
	KindProcessorCount
	// KindTreeHeight is "h", the height of a tree-shaped input.
	KindTreeHeight
	// KindSecondarySize is a second independent size parameter (e.g. "m").
	KindSecondarySize
	// KindCustom is any front-end-defined role not covered above.
	KindCustom
)

// String renders the Kind as a short tag, used in diagnostics and
// Big-O notes; it never affects equality or hashing.
func (k Kind) String() string {
	switch k {
	case KindInputSize:
		return "input-size"
	case KindVertexCount:
		return "vertex-count"
	case KindEdgeCount:
		return "edge-count"
	case KindStringLength:
		return "string-length"
	case KindProcessorCount:
		return "processor-count"
	case KindTreeHeight:
		return "tree-height"
	case KindSecondarySize:
		return "secondary-size"
	default:
		return "custom"
	}
}

// Variable is a named symbol with a semantic Kind. Description is
// optional, front-end-supplied prose and does not participate in
// equality.
type Variable struct {
	Name        string
	Kind        Kind
	Description string
}

// New constructs a Variable of the given name and kind.
func New(name string, kind Kind) Variable {
	return Variable{Name: name, Kind: kind}
}

// Equal reports whether two Variables are structurally identical on
// Name and Kind (Description is ignored).
func (v Variable) Equal(o Variable) bool {
	return v.Name == o.Name && v.Kind == o.Kind
}

// key is the internal map key: Description is deliberately excluded so
// two Variables differing only in prose collapse to one Set member.
type key struct {
	name string
	kind Kind
}

func (v Variable) key() key { return key{name: v.Name, kind: v.Kind} }

func (v Variable) String() string {
	return fmt.Sprintf("%s[%s]", v.Name, v.Kind)
}

// Set is an immutable, hashable collection of distinct Variables,
// returned by expr.FreeVariables and consumed by classify's memo cache.
type Set struct {
	members map[key]Variable
}

// NewSet builds a Set from zero or more Variables, deduplicating by
// Name+Kind.
func NewSet(vars ...Variable) Set {
	s := Set{members: make(map[key]Variable, len(vars))}
	for _, v := range vars {
		s.members[v.key()] = v
	}
	return s
}

// Union returns a new Set containing the members of both s and o.
func (s Set) Union(o Set) Set {
	out := make(map[key]Variable, len(s.members)+len(o.members))
	for k, v := range s.members {
		out[k] = v
	}
	for k, v := range o.members {
		out[k] = v
	}
	return Set{members: out}
}

// Add returns a new Set with v inserted (or replacing an existing
// member with the same Name+Kind).
func (s Set) Add(v Variable) Set {
	out := make(map[key]Variable, len(s.members)+1)
	for k, m := range s.members {
		out[k] = m
	}
	out[v.key()] = v
	return Set{members: out}
}

// Contains reports whether v (by Name+Kind) is a member of s.
func (s Set) Contains(v Variable) bool {
	_, ok := s.members[v.key()]
	return ok
}

// Len returns the number of distinct members.
func (s Set) Len() int { return len(s.members) }

// Slice returns the members in a stable (name, then kind) order, so
// callers get deterministic output regardless of map iteration order.
func (s Set) Slice() []Variable {
	out := make([]Variable, 0, len(s.members))
	for _, v := range s.members {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// Hash returns a stable structural hash of the Set's sorted member
// slice, suitable as a memoization key (e.g. classify's per-free-
// variable-set classification cache). Order-independent: two Sets
// with the same members hash identically regardless of construction
// order.
func (s Set) Hash() (uint64, error) {
	h, err := hashstructure.Hash(s.Slice(), hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("variable: hash set: %w", err)
	}
	return h, nil
}
