// Package scan searches document trees for fields with target keys.
//
// One traversal serves every use: a Policy names the target keys, the keys
// whose subtrees are never entered, and whether the first match inside an
// object ends the search of that object.
package scan

import (
	"sort"

	"github.com/louisbranch/anbennar-atlas/internal/script"
)

// Policy configures a walk.
type Policy struct {
	// Targets are the keys whose fields are reported.
	Targets []string
	// Opaque keys are skipped along with their whole subtree.
	Opaque []string
	// StopOnMatch ends the walk of an object at its first target field.
	// Enclosing objects continue with their remaining fields.
	StopOnMatch bool
}

func (p Policy) isTarget(key string) bool { return contains(p.Targets, key) }

func (p Policy) isOpaque(key string) bool { return contains(p.Opaque, key) }

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// Walk calls visit for every target field under v. Only object-shaped values
// are descended into; scalars and item-only blocks are leaves. Target fields
// are not descended into.
func Walk(v script.Value, p Policy, visit func(script.Field)) {
	obj, err := v.Object()
	if err != nil {
		return
	}
	walkObject(obj, p, visit)
}

// WalkObject is Walk for a parsed document or an already-read object.
func WalkObject(obj *script.Object, p Policy, visit func(script.Field)) {
	walkObject(obj, p, visit)
}

func walkObject(obj *script.Object, p Policy, visit func(script.Field)) {
	for _, f := range obj.Fields() {
		if p.isOpaque(f.Key) {
			continue
		}
		if p.isTarget(f.Key) {
			visit(f)
			if p.StopOnMatch {
				return
			}
			continue
		}
		Walk(f.Value, p, visit)
	}
}

// Collect adds the text of every target field under v to set. Matches whose
// value is not a scalar are skipped; the number skipped is returned.
func Collect(set Set, v script.Value, p Policy) (skipped int) {
	Walk(v, p, func(f script.Field) {
		s, err := f.Value.Text()
		if err != nil {
			skipped++
			return
		}
		set.Add(s)
	})
	return skipped
}

// Set is a set of matched values.
type Set map[string]struct{}

// NewSet returns a set holding values.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v.
func (s Set) Add(v string) { s[v] = struct{}{} }

// Has reports whether v is present.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Merge inserts every member of other.
func (s Set) Merge(other Set) {
	for v := range other {
		s.Add(v)
	}
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
