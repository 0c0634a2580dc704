// Package supercell: sentinel errors and the Prim/Supercell data model.
package supercell

import (
	"errors"

	"github.com/quarzite/quarzite/symgroup"
	"github.com/quarzite/quarzite/xtal"
)

// Sentinel errors for supercell operations.
var (
	// ErrNilPrim indicates a nil prim handle.
	ErrNilPrim = errors.New("supercell: prim is nil")

	// ErrCanonicalMappingNotFound indicates that no point-group element maps
	// between a supercell lattice and its canonical form. This cannot occur
	// for consistent inputs; it is an internal-consistency failure and not
	// recoverable.
	ErrCanonicalMappingNotFound = errors.New("supercell: no operation maps lattice onto canonical form")
)

// Prim bundles the shared, immutable parent of every supercell: the crystal
// structure, its factor group, the derived point group, and the exact
// integer site-coordinate representation of each factor-group operation
// (aligned with factor-group element order).
type Prim struct {
	structure   *xtal.BasicStructure
	factorGroup *symgroup.SymGroup
	pointGroup  *symgroup.SymGroup
	siteRep     []xtal.UnitCellCoordRep
}

// Structure returns the prim crystal structure.
func (p *Prim) Structure() *xtal.BasicStructure { return p.structure }

// FactorGroup returns the prim factor group.
func (p *Prim) FactorGroup() *symgroup.SymGroup { return p.factorGroup }

// PointGroup returns the point group derived from the factor group.
func (p *Prim) PointGroup() *symgroup.SymGroup { return p.pointGroup }

// SiteRep returns the site-coordinate representation of the factor group,
// aligned with factor-group element order. Read-only.
func (p *Prim) SiteRep() []xtal.UnitCellCoordRep { return p.siteRep }

// Supercell is a value tying a shared prim to one superlattice. Supercells
// are computed on demand and have no identity beyond their (prim,
// transformation) pair.
type Supercell struct {
	prim         *Prim
	superlattice xtal.Superlattice
}

// NewSupercell constructs a supercell of prim with the given integer
// transformation matrix.
func NewSupercell(prim *Prim, transform [3][3]int) (*Supercell, error) {
	if prim == nil {
		return nil, ErrNilPrim
	}
	sl, err := xtal.NewSuperlattice(prim.structure.Lattice(), transform)
	if err != nil {
		return nil, err
	}

	return &Supercell{prim: prim, superlattice: sl}, nil
}

// newSupercellFromLattice builds a supercell of the same prim whose
// superlattice is the given lattice.
func newSupercellFromLattice(prim *Prim, lat xtal.Lattice) (*Supercell, error) {
	sl, err := xtal.NewSuperlatticeFromLattices(prim.structure.Lattice(), lat)
	if err != nil {
		return nil, err
	}

	return &Supercell{prim: prim, superlattice: sl}, nil
}

// Prim returns the shared prim handle.
func (s *Supercell) Prim() *Prim { return s.prim }

// Superlattice returns the supercell's superlattice.
func (s *Supercell) Superlattice() xtal.Superlattice { return s.superlattice }
