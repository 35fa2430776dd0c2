package stm32

import (
	"bytes"
	"fmt"
	"io"

	"github.com/marcinbor85/gohex"
)

// Placement reports where one image data segment landed.
type Placement struct {
	Region  MemoryRegion
	Address uint32
	Size    uint32
}

// CheckImage parses an Intel HEX firmware image and verifies that every
// data segment lands inside a declared region of the map. It returns
// one Placement per segment, in image order.
func CheckImage(m *MemoryMap, b []byte) ([]Placement, error) {
	r := bytes.NewReader(b)
	return checkImage(m, r)
}

func checkImage(m *MemoryMap, r io.Reader) ([]Placement, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return nil, err
	}
	var placements []Placement
	for _, segment := range mem.GetDataSegments() {
		addr := segment.Address
		size := uint32(len(segment.Data))
		reg, ok := m.Contains(addr)
		if !ok {
			return nil, fmt.Errorf("segment at %#010x is outside every declared region", addr)
		}
		if uint64(addr)+uint64(size) > reg.End() {
			return nil, fmt.Errorf("segment at %#010x (%d bytes) spills out of %s", addr, size, reg.Name)
		}
		placements = append(placements, Placement{Region: reg, Address: addr, Size: size})
	}
	return placements, nil
}
