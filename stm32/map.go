// Package stm32 models the physical memory topology of STM32F1
// microcontrollers as build-time configuration: named flash and RAM
// regions that a downstream link/placement step allocates into.
package stm32

import (
	"errors"
	"fmt"
)

// The device address bus is 32 bits wide. Region end addresses may
// reach 1<<32 exactly (a region touching the top of the space) but
// never exceed it.
const addressSpace = uint64(1) << 32

var (
	DuplicateName   = errors.New("region name already defined")
	InvalidLength   = errors.New("region length must be positive")
	NotFound        = errors.New("region not found")
	AddressOverflow = errors.New("region exceeds 32-bit address space")
)

// MemoryRegion is one contiguous range of physical addresses reserved
// for a single memory class. Length is stored canonically in bytes.
type MemoryRegion struct {
	Name   string
	Origin uint32
	Length uint32
}

// End returns the first address past the region. The result needs 33
// bits for a region touching the top of the address space.
func (r MemoryRegion) End() uint64 {
	return uint64(r.Origin) + uint64(r.Length)
}

// Contains reports whether addr falls within [Origin, Origin+Length).
func (r MemoryRegion) Contains(addr uint32) bool {
	return addr >= r.Origin && uint64(addr) < r.End()
}

func (r MemoryRegion) String() string {
	return fmt.Sprintf("%s: ORIGIN = %#010x, LENGTH = %s", r.Name, r.Origin, Size(r.Length))
}

// OverlapError reports two regions whose address ranges intersect,
// along with the intersecting range [Start, End).
type OverlapError struct {
	A, B  string
	Start uint64
	End   uint64
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("regions %s and %s overlap in [%#010x, %#010x)", e.A, e.B, e.Start, e.End)
}

// MemoryMap is an ordered set of named memory regions. Order reflects
// authoring priority only; no validation or query result depends on it.
// A map is authored once, validated, and from then on read-only, so it
// may be shared across any number of consumers without synchronization.
type MemoryMap struct {
	regions []MemoryRegion
}

func NewMemoryMap() *MemoryMap {
	return &MemoryMap{}
}

// Define registers a region. Name collisions and zero lengths are
// rejected here; cross-region invariants are checked by Validate.
func (m *MemoryMap) Define(name string, origin, length uint32) error {
	for _, r := range m.regions {
		if r.Name == name {
			return fmt.Errorf("%w: %s", DuplicateName, name)
		}
	}
	if length == 0 {
		return fmt.Errorf("%w: %s", InvalidLength, name)
	}
	m.regions = append(m.regions, MemoryRegion{Name: name, Origin: origin, Length: length})
	return nil
}

// Validate checks the full region set: every end address must fit the
// 32-bit bus and no two regions may intersect. Layout errors are
// configuration bugs, so any failure must abort the caller's build.
func (m *MemoryMap) Validate() error {
	for _, r := range m.regions {
		if r.End() > addressSpace {
			return fmt.Errorf("%w: %s ends at %#x", AddressOverflow, r.Name, r.End())
		}
	}
	for i, a := range m.regions {
		for _, b := range m.regions[i+1:] {
			start := max(uint64(a.Origin), uint64(b.Origin))
			end := min(a.End(), b.End())
			if start < end {
				return &OverlapError{A: a.Name, B: b.Name, Start: start, End: end}
			}
		}
	}
	return nil
}

// Lookup returns the region registered under name.
func (m *MemoryMap) Lookup(name string) (MemoryRegion, error) {
	for _, r := range m.regions {
		if r.Name == name {
			return r, nil
		}
	}
	return MemoryRegion{}, fmt.Errorf("%w: %s", NotFound, name)
}

// Contains returns the region whose range includes addr. For a
// validated map at most one region can match.
func (m *MemoryMap) Contains(addr uint32) (MemoryRegion, bool) {
	for _, r := range m.regions {
		if r.Contains(addr) {
			return r, true
		}
	}
	return MemoryRegion{}, false
}

// Regions returns the regions in authoring order.
func (m *MemoryMap) Regions() []MemoryRegion {
	out := make([]MemoryRegion, len(m.regions))
	copy(out, m.regions)
	return out
}
