// Package records contains the generic, pure operations shared by every
// record variant. This is part of the Functional Core - no I/O, only pure functions.
//
// A Store is never mutated in place. Every transformation returns a new map;
// records that were not touched are carried over as-is.
package records

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Store maps a record ID to its record. A nil Store is "absent" and rejected
// by every operation; an empty non-nil Store is a normal input.
type Store[R any] map[string]R

// MergePolicy decides what Merge does when an ID exists in both stores.
type MergePolicy string

const (
	// MergeOverwrite lets the incoming record win and reports the overlap.
	MergeOverwrite MergePolicy = "overwrite"
	// MergeReject fails the merge when any ID overlaps.
	MergeReject MergePolicy = "reject"
)

// ParseMergePolicy validates a policy name. Empty selects MergeOverwrite.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch MergePolicy(s) {
	case "", MergeOverwrite:
		return MergeOverwrite, nil
	case MergeReject:
		return MergeReject, nil
	}
	return "", InvalidArgument("unknown merge policy %q (want %q or %q)", s, MergeOverwrite, MergeReject)
}

// IDs returns the store's IDs in ascending order.
func IDs[R any](s Store[R]) []string {
	return slices.Sorted(maps.Keys(s))
}

// Filter returns a new store holding the records for which keep returns true.
func Filter[R any](s Store[R], keep func(R) bool) (Store[R], error) {
	if s == nil {
		return nil, InvalidArgument("store cannot be nil")
	}
	out := make(Store[R])
	for id, r := range s {
		if keep(r) {
			out[id] = r
		}
	}
	return out, nil
}

// Update returns a new store in which record id is replaced by fn(record).
// The input store is left untouched; fn must not mutate shared slices.
func Update[R any](s Store[R], kind, id string, fn func(R) (R, error)) (Store[R], error) {
	if s == nil {
		return nil, InvalidArgument("store cannot be nil")
	}
	if id == "" {
		return nil, InvalidArgument("%s ID cannot be empty", kind)
	}
	current, ok := s[id]
	if !ok {
		return nil, NotFound(kind, id)
	}
	next, err := fn(current)
	if err != nil {
		return nil, err
	}

	out := maps.Clone(s)
	out[id] = next
	return out, nil
}

// Merge returns every record of primary plus mark(r) for every record of incoming.
// The returned overlap lists IDs present in both stores, in ascending order.
func Merge[R any](primary, incoming Store[R], mark func(R) R, policy MergePolicy) (Store[R], []string, error) {
	if primary == nil || incoming == nil {
		return nil, nil, InvalidArgument("stores cannot be nil")
	}

	var overlap []string
	for id := range incoming {
		if _, ok := primary[id]; ok {
			overlap = append(overlap, id)
		}
	}
	slices.Sort(overlap)

	if len(overlap) > 0 && policy == MergeReject {
		return nil, overlap, InvalidArgument("incoming IDs already present: %s", strings.Join(overlap, ", "))
	}

	out := make(Store[R], len(primary)+len(incoming))
	maps.Copy(out, primary)
	for id, r := range incoming {
		out[id] = mark(r)
	}
	return out, overlap, nil
}

// CountBy counts records per key.
func CountBy[R any](s Store[R], key func(R) string) (map[string]int, error) {
	if s == nil {
		return nil, InvalidArgument("store cannot be nil")
	}
	counts := make(map[string]int)
	for _, r := range s {
		counts[key(r)]++
	}
	return counts, nil
}

// Sum adds value(r) over all records. An empty store sums to zero.
func Sum[R any, N int | float64](s Store[R], value func(R) N) (N, error) {
	var total N
	if s == nil {
		return total, InvalidArgument("store cannot be nil")
	}
	for _, r := range s {
		total += value(r)
	}
	return total, nil
}

// MaxBy returns the record that is greatest under compare.
// Ties keep the record with the smallest ID.
func MaxBy[R any](s Store[R], compare func(a, b R) int) (string, R, error) {
	var zero R
	if len(s) == 0 {
		return "", zero, InvalidArgument("store cannot be nil or empty")
	}

	ids := IDs(s)
	bestID, best := ids[0], s[ids[0]]
	for _, id := range ids[1:] {
		if compare(s[id], best) > 0 {
			bestID, best = id, s[id]
		}
	}
	return bestID, best, nil
}

// Bracket is one named numeric range and the IDs that fall in it.
type Bracket struct {
	Name string
	IDs  []string
}

// Brackets is an ordered partition of a store's IDs.
type Brackets []Bracket

// Get returns the IDs in the named bracket, or nil when no such bracket exists.
func (b Brackets) Get(name string) []string {
	for _, br := range b {
		if br.Name == name {
			return br.IDs
		}
	}
	return nil
}

// Bucket partitions IDs by measure. names has one more entry than bounds:
// names[0] takes [0, bounds[0]], names[i] takes (bounds[i-1], bounds[i]],
// and the last name takes everything above the final bound.
// Boundary values belong to the lower bracket. IDs are sorted within each bracket.
func Bucket[R any, N int | float64](s Store[R], measure func(R) N, names []string, bounds []N) (Brackets, error) {
	if s == nil {
		return nil, InvalidArgument("store cannot be nil")
	}
	if len(names) != len(bounds)+1 {
		return nil, InvalidArgument("need %d bracket names for %d bounds, got %d", len(bounds)+1, len(bounds), len(names))
	}
	if !slices.IsSorted(bounds) {
		return nil, InvalidArgument("bracket bounds must be ascending")
	}

	out := make(Brackets, len(names))
	for i, name := range names {
		out[i] = Bracket{Name: name, IDs: []string{}}
	}
	for _, id := range IDs(s) {
		i, _ := slices.BinarySearchFunc(bounds, measure(s[id]), cmp.Compare[N])
		out[i].IDs = append(out[i].IDs, id)
	}
	return out, nil
}

// AppendUnique returns list with entry appended, as a fresh slice, unless
// entry is already present. added reports whether the list changed.
// The input slice is never written to.
func AppendUnique(list []string, entry string) (out []string, added bool) {
	if slices.Contains(list, entry) {
		return list, false
	}
	out = make([]string, len(list), len(list)+1)
	copy(out, list)
	return append(out, entry), true
}

// ContainsFold reports whether sub is within s, ignoring case.
func ContainsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// AnyContainsFold reports whether any entry contains sub, ignoring case.
func AnyContainsFold(list []string, sub string) bool {
	return slices.ContainsFunc(list, func(e string) bool {
		return ContainsFold(e, sub)
	})
}
