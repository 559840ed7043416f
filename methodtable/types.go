package methodtable

import (
	"time"

	"github.com/complexo-io/complexo/expr"
)

// SourceKind tags how a complexity claim was obtained, per spec.md §3's
// source-kind enumeration.
type SourceKind string

const (
	SourceDocumented SourceKind = "documented"
	SourceAttested   SourceKind = "attested"
	SourceEmpirical  SourceKind = "empirical"
	SourceInferred   SourceKind = "inferred"
	SourceHeuristic  SourceKind = "heuristic"
	SourceUnknown    SourceKind = "unknown"
)

// ReviewRequired reports whether k is authoritative enough on its own
// or whether a human should confirm the claim before it's trusted.
// Documented (language spec / stdlib doc), attested (a maintainer or
// paper said so), and empirical (measured) sources stand on their own;
// inferred, heuristic, and unknown sources do not.
func (k SourceKind) ReviewRequired() bool {
	switch k {
	case SourceDocumented, SourceAttested, SourceEmpirical:
		return false
	default:
		return true
	}
}

// Source attributes a complexity claim to where it came from, per
// spec.md §3's Attributed complexity tuple.
type Source struct {
	Kind         SourceKind `yaml:"kind"`
	Citation     string     `yaml:"citation,omitempty"`
	Confidence   float64    `yaml:"confidence"`
	IsUpperBound bool       `yaml:"is_upper_bound,omitempty"`
	IsAmortized  bool       `yaml:"is_amortized,omitempty"`
	IsWorstCase  bool       `yaml:"is_worst_case,omitempty"`
	Notes        string     `yaml:"notes,omitempty"`
	LastVerified *time.Time `yaml:"last_verified,omitempty"`
}

// ReviewRequired reports whether s.Kind flags this Source for review.
func (s Source) ReviewRequired() bool { return s.Kind.ReviewRequired() }

// AttributedComplexity is a complexity expression plus the Source that
// backs it — the value half of a library method table entry.
type AttributedComplexity struct {
	Expression expr.Expression `yaml:"-"`
	Source     Source          `yaml:"source"`
}

// ReviewRequired reports whether ac's Source flags it for review.
func (ac AttributedComplexity) ReviewRequired() bool { return ac.Source.ReviewRequired() }

// Key identifies one Table row: a concrete type and one of its methods.
type Key struct {
	TypeName   string
	MethodName string
}

// Table is the library method table itself: a keyed mapping from
// (type name, method name) to an attributed complexity, consumed by
// the core and populated externally. The core does not mandate
// contents beyond this shape.
type Table map[Key]AttributedComplexity

// Lookup returns the attributed complexity recorded for typeName's
// methodName, if any.
func (t Table) Lookup(typeName, methodName string) (AttributedComplexity, bool) {
	ac, ok := t[Key{TypeName: typeName, MethodName: methodName}]
	return ac, ok
}

// NeedsReview returns the Key of every entry in t whose Source flags
// it for manual review, in no particular order.
func NeedsReview(t Table) []Key {
	var keys []Key
	for k, ac := range t {
		if ac.ReviewRequired() {
			keys = append(keys, k)
		}
	}
	return keys
}
