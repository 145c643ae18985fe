// SPDX-License-Identifier: MIT

package order

// Relation is the outcome of comparing two items under the strict partial order.
type Relation uint8

const (
	// Incomparable: the items overlap or have no definite order.
	Incomparable Relation = iota
	// Before: the receiver ends no later than the argument starts.
	Before
	// After: the argument ends no later than the receiver starts.
	After
)

// String implements fmt.Stringer.
func (r Relation) String() string {
	switch r {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "incomparable"
	}
}

// Ordered reports whether r is Before or After.
func (r Relation) Ordered() bool {
	return r == Before || r == After
}

// Inverse returns the relation seen from the other side.
// Incomparable is its own inverse.
func (r Relation) Inverse() Relation {
	switch r {
	case Before:
		return After
	case After:
		return Before
	default:
		return Incomparable
	}
}

// Item is any value with a non-negative integer weight and a strict partial
// order against values of its own type.
//
// Implementations must keep Compare antisymmetric:
// a.Compare(b) == Before  ⇔  b.Compare(a) == After.
type Item[T any] interface {
	Weight() uint32
	Compare(other T) Relation
}

// Chain reports whether items form a chain: every ordered pair (i, j), i ≠ j,
// compares as Before or After. Empty and single-item slices are chains.
// Complexity: O(n²).
func Chain[T Item[T]](items []T) bool {
	for i := range items {
		for j := range items {
			if i == j {
				continue
			}
			if !items[i].Compare(items[j]).Ordered() {
				return false
			}
		}
	}

	return true
}

// TotalWeight sums the weights of items.
func TotalWeight[T Item[T]](items []T) uint64 {
	var sum uint64
	for _, it := range items {
		sum += uint64(it.Weight())
	}

	return sum
}
