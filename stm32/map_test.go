package stm32_test

import (
	"errors"
	"testing"

	"github.com/kmsz/go-stm32/stm32"
)

func platformMap(t *testing.T) *stm32.MemoryMap {
	t.Helper()
	m := stm32.NewMemoryMap()
	if err := m.Define("FLASH", 0x08000000, 32*1024); err != nil {
		t.Fatalf("did not expect Define(FLASH) to fail. err is %v", err)
	}
	if err := m.Define("RAM", 0x20000000, 10*1024); err != nil {
		t.Fatalf("did not expect Define(RAM) to fail. err is %v", err)
	}
	return m
}

func TestValidatePlatformMap(t *testing.T) {
	m := platformMap(t)
	if err := m.Validate(); err != nil {
		t.Fatalf("did not expect Validate() to fail. err is %v", err)
	}
}

func TestLookup(t *testing.T) {
	m := platformMap(t)
	r, err := m.Lookup("FLASH")
	if err != nil {
		t.Fatalf("did not expect Lookup(FLASH) to fail. err is %v", err)
	}
	if r.Name != "FLASH" || r.Origin != 0x08000000 || r.Length != 32*1024 {
		t.Fatalf("Lookup(FLASH) returned wrong region: %v", r)
	}
	if _, err := m.Lookup("EEPROM"); !errors.Is(err, stm32.NotFound) {
		t.Fatalf("expected NotFound for EEPROM, got %v", err)
	}
}

func TestContains(t *testing.T) {
	m := platformMap(t)

	cases := []struct {
		addr   uint32
		region string
		ok     bool
	}{
		{0x08000000, "FLASH", true},
		{0x08000010, "FLASH", true},
		{0x08007FFF, "FLASH", true},
		{0x08008000, "", false},
		{0x1FFFFFFF, "", false},
		{0x20000000, "RAM", true},
		{0x20000FFF, "RAM", true},
		{0x20002800, "", false},
		{0x00000000, "", false},
		{0xFFFFFFFF, "", false},
	}

	for i, c := range cases {
		r, ok := m.Contains(c.addr)
		if ok != c.ok {
			t.Fatalf("case %d: Contains(%#010x) = %v, expected %v", i, c.addr, ok, c.ok)
		}
		if ok && r.Name != c.region {
			t.Fatalf("case %d: Contains(%#010x) returned %s, expected %s", i, c.addr, r.Name, c.region)
		}
	}
}

func TestContainsIsDisjoint(t *testing.T) {
	// back to back regions must not both claim the boundary address
	m := stm32.NewMemoryMap()
	if err := m.Define("A", 0x20000000, 0x1000); err != nil {
		t.Fatalf("did not expect Define(A) to fail. err is %v", err)
	}
	if err := m.Define("B", 0x20001000, 0x1000); err != nil {
		t.Fatalf("did not expect Define(B) to fail. err is %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("did not expect Validate() to fail. err is %v", err)
	}
	r, ok := m.Contains(0x20000FFF)
	if !ok || r.Name != "A" {
		t.Fatalf("expected A to contain 0x20000fff, got %v %v", r, ok)
	}
	r, ok = m.Contains(0x20001000)
	if !ok || r.Name != "B" {
		t.Fatalf("expected B to contain 0x20001000, got %v %v", r, ok)
	}
}

func TestDuplicateName(t *testing.T) {
	m := platformMap(t)
	// differing origin and length must not rescue a duplicate name
	err := m.Define("FLASH", 0x08100000, 64*1024)
	if !errors.Is(err, stm32.DuplicateName) {
		t.Fatalf("expected DuplicateName, got %v", err)
	}
}

func TestInvalidLength(t *testing.T) {
	m := stm32.NewMemoryMap()
	if err := m.Define("CCM", 0x10000000, 0); !errors.Is(err, stm32.InvalidLength) {
		t.Fatalf("expected InvalidLength, got %v", err)
	}
}

func TestOverlap(t *testing.T) {
	m := stm32.NewMemoryMap()
	if err := m.Define("A", 0x08000000, 0x1000); err != nil {
		t.Fatalf("did not expect Define(A) to fail. err is %v", err)
	}
	if err := m.Define("B", 0x08000800, 0x1000); err != nil {
		t.Fatalf("did not expect Define(B) to fail. err is %v", err)
	}
	err := m.Validate()
	var overlap *stm32.OverlapError
	if !errors.As(err, &overlap) {
		t.Fatalf("expected OverlapError, got %v", err)
	}
	if overlap.A != "A" || overlap.B != "B" {
		t.Fatalf("expected overlap between A and B, got %s and %s", overlap.A, overlap.B)
	}
	if overlap.Start != 0x08000800 || overlap.End != 0x08001000 {
		t.Fatalf("expected overlap range [0x08000800, 0x08001000), got [%#010x, %#010x)", overlap.Start, overlap.End)
	}
}

func TestOverlapContained(t *testing.T) {
	// a region entirely inside another is an overlap too
	m := stm32.NewMemoryMap()
	if err := m.Define("RAM", 0x20000000, 0x2800); err != nil {
		t.Fatalf("did not expect Define(RAM) to fail. err is %v", err)
	}
	if err := m.Define("STACK", 0x20002000, 0x400); err != nil {
		t.Fatalf("did not expect Define(STACK) to fail. err is %v", err)
	}
	var overlap *stm32.OverlapError
	if err := m.Validate(); !errors.As(err, &overlap) {
		t.Fatalf("expected OverlapError, got %v", err)
	}
}

func TestAddressOverflow(t *testing.T) {
	m := stm32.NewMemoryMap()
	if err := m.Define("HIGH", 0xFFFFF000, 0x2000); err != nil {
		t.Fatalf("did not expect Define(HIGH) to fail. err is %v", err)
	}
	if err := m.Validate(); !errors.Is(err, stm32.AddressOverflow) {
		t.Fatalf("expected AddressOverflow, got %v", err)
	}

	// a region ending exactly at the top of the address space is fine
	m = stm32.NewMemoryMap()
	if err := m.Define("HIGH", 0xFFFFF000, 0x1000); err != nil {
		t.Fatalf("did not expect Define(HIGH) to fail. err is %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("did not expect Validate() to fail. err is %v", err)
	}
	if r, ok := m.Contains(0xFFFFFFFF); !ok || r.Name != "HIGH" {
		t.Fatalf("expected HIGH to contain 0xffffffff, got %v %v", r, ok)
	}
}

func TestAuthoringOrderHasNoEffect(t *testing.T) {
	// regions declared in descending address order behave identically
	m := stm32.NewMemoryMap()
	if err := m.Define("RAM", 0x20000000, 10*1024); err != nil {
		t.Fatalf("did not expect Define(RAM) to fail. err is %v", err)
	}
	if err := m.Define("FLASH", 0x08000000, 32*1024); err != nil {
		t.Fatalf("did not expect Define(FLASH) to fail. err is %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("did not expect Validate() to fail. err is %v", err)
	}
	if r, ok := m.Contains(0x08000010); !ok || r.Name != "FLASH" {
		t.Fatalf("expected FLASH to contain 0x08000010, got %v %v", r, ok)
	}

	regions := m.Regions()
	if len(regions) != 2 || regions[0].Name != "RAM" || regions[1].Name != "FLASH" {
		t.Fatalf("expected authoring order to be preserved, got %v", regions)
	}
}
