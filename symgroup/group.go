package symgroup

import (
	"fmt"
	"sort"

	"github.com/quarzite/quarzite/xtal"
)

// SymGroup is an ordered sequence of symmetry operations, optionally a
// subgroup of a head group. Groups are immutable after construction and
// safely shared by every value derived from them.
//
// For subgroups, HeadGroupIndex()[i] is the index in the head group of
// Elements()[i]; subgroup element order is the induced sub-order of the
// head group, and index sets are never duplicated.
type SymGroup struct {
	elements       []xtal.SymOp
	head           *SymGroup
	headGroupIndex []int

	multTable    [][]int // multTable[i][j] = index of elements[i]∘elements[j]; nil for subgroups
	inverseIndex []int
	identity     int
}

// NewSymGroup constructs a head group from an element sequence, building
// its multiplication table and inverse index with the supplied element
// equality (use xtal.SymOpPeriodicMatches for factor groups, whose products
// close only up to a lattice translation).
//
// Returns ErrEmptyGroup, ErrNotClosed, ErrMissingIdentity or
// ErrMissingInverse when the sequence is not a group under matches.
// Complexity: O(|G|³) matches calls.
func NewSymGroup(elements []xtal.SymOp, matches func(a, b xtal.SymOp) bool) (*SymGroup, error) {
	if len(elements) == 0 {
		return nil, ErrEmptyGroup
	}
	n := len(elements)
	g := &SymGroup{
		elements:  append([]xtal.SymOp(nil), elements...),
		multTable: make([][]int, n),
	}

	for i := 0; i < n; i++ {
		g.multTable[i] = make([]int, n)
		for j := 0; j < n; j++ {
			product := xtal.Compose(g.elements[i], g.elements[j])
			k := -1
			for m := 0; m < n; m++ {
				if matches(product, g.elements[m]) {
					k = m

					break
				}
			}
			if k < 0 {
				return nil, fmt.Errorf("%w: product of elements %d and %d", ErrNotClosed, i, j)
			}
			g.multTable[i][j] = k
		}
	}

	// The identity is the element e with e₀∘e = e₀.
	g.identity = -1
	for k := 0; k < n; k++ {
		if g.multTable[0][k] == 0 {
			g.identity = k

			break
		}
	}
	if g.identity < 0 {
		return nil, ErrMissingIdentity
	}

	g.inverseIndex = make([]int, n)
	for i := 0; i < n; i++ {
		inv := -1
		for j := 0; j < n; j++ {
			if g.multTable[i][j] == g.identity {
				inv = j

				break
			}
		}
		if inv < 0 {
			return nil, fmt.Errorf("%w: element %d", ErrMissingInverse, i)
		}
		g.inverseIndex[i] = inv
	}

	return g, nil
}

// NewSubgroup constructs a derived subgroup of head from explicit elements
// and their head-group indices. Elements and indices must be aligned; they
// are reordered into the induced head-group order and duplicate indices are
// merged. Subgroups carry no multiplication table.
func NewSubgroup(head *SymGroup, elements []xtal.SymOp, headGroupIndex []int) *SymGroup {
	type pair struct {
		ix int
		op xtal.SymOp
	}
	pairs := make([]pair, 0, len(elements))
	seen := make(map[int]bool, len(elements))
	for i, ix := range headGroupIndex {
		if seen[ix] {
			continue
		}
		seen[ix] = true
		pairs = append(pairs, pair{ix: ix, op: elements[i]})
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].ix < pairs[b].ix })

	g := &SymGroup{
		head:           head,
		elements:       make([]xtal.SymOp, len(pairs)),
		headGroupIndex: make([]int, len(pairs)),
	}
	for i, p := range pairs {
		g.elements[i] = p.op
		g.headGroupIndex[i] = p.ix
	}

	return g
}

// MakeSubgroup constructs the subgroup of head containing the elements at
// the given head-group indices, in induced order.
func MakeSubgroup(head *SymGroup, headGroupIndex []int) *SymGroup {
	elements := make([]xtal.SymOp, len(headGroupIndex))
	for i, ix := range headGroupIndex {
		elements[i] = head.elements[ix]
	}

	return NewSubgroup(head, elements, headGroupIndex)
}

// Elements returns the group's ordered element sequence. The returned slice
// is shared and must be treated as read-only.
func (g *SymGroup) Elements() []xtal.SymOp { return g.elements }

// Element returns the operation at index i.
func (g *SymGroup) Element(i int) xtal.SymOp { return g.elements[i] }

// Size returns the number of elements.
func (g *SymGroup) Size() int { return len(g.elements) }

// Head returns the parent group, or nil for a head group.
func (g *SymGroup) Head() *SymGroup { return g.head }

// HeadGroupIndex returns the sorted head-group indices of a subgroup, or
// nil for a head group. Read-only.
func (g *SymGroup) HeadGroupIndex() []int { return g.headGroupIndex }

// HasMultiplicationTable reports whether Mul and Inv may be used.
func (g *SymGroup) HasMultiplicationTable() bool { return g.multTable != nil }

// Mul returns the index of elements[i]∘elements[j].
// Valid only for groups constructed with NewSymGroup.
func (g *SymGroup) Mul(i, j int) int { return g.multTable[i][j] }

// Inv returns the index of the inverse of elements[i].
// Valid only for groups constructed with NewSymGroup.
func (g *SymGroup) Inv(i int) int { return g.inverseIndex[i] }

// IdentityIndex returns the index of the identity element.
// Valid only for groups constructed with NewSymGroup.
func (g *SymGroup) IdentityIndex() int { return g.identity }
