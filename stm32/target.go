package stm32

import (
	"fmt"

	"github.com/kmsz/go-stm32/stm32/config/target"
)

// All STM32F1 parts map flash and SRAM at the same origins; only the
// densities differ between parts.
const (
	FlashOrigin = uint32(0x08000000)
	RAMOrigin   = uint32(0x20000000)
)

// Flash and SRAM densities per part, from the RM0008 device table.
var densities = map[target.Target]struct{ flash, ram Size }{
	target.STM32F103C4: {16 * Kb, 6 * Kb},
	target.STM32F103C6: {32 * Kb, 10 * Kb},
	target.STM32F103C8: {64 * Kb, 20 * Kb},
	target.STM32F103CB: {128 * Kb, 20 * Kb},
	target.STM32F103R8: {64 * Kb, 20 * Kb},
	target.STM32F103RB: {128 * Kb, 20 * Kb},
	target.STM32F103RC: {256 * Kb, 48 * Kb},
	target.STM32F103RE: {512 * Kb, 64 * Kb},
}

// TargetMap returns the builtin FLASH/RAM map for a known part,
// already validated.
func TargetMap(t target.Target) (*MemoryMap, error) {
	d, ok := densities[t]
	if !ok {
		return nil, fmt.Errorf("target %s is not registered", t)
	}
	m := NewMemoryMap()
	if err := m.Define("FLASH", FlashOrigin, uint32(d.flash)); err != nil {
		return nil, err
	}
	if err := m.Define("RAM", RAMOrigin, uint32(d.ram)); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
