package stm32

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the serialized region table.
const (
	fieldRegion = 1

	regionName   = 1
	regionOrigin = 2
	regionLength = 3
)

var truncatedMap = errors.New("truncated memory map data")

// AppendMap appends a wire-format encoding of the map to b. Each region
// is a length-delimited sub-message so the format can grow fields
// without breaking old readers.
func AppendMap(b []byte, m *MemoryMap) []byte {
	for _, r := range m.regions {
		var sub []byte
		sub = protowire.AppendTag(sub, regionName, protowire.BytesType)
		sub = protowire.AppendString(sub, r.Name)
		sub = protowire.AppendTag(sub, regionOrigin, protowire.VarintType)
		sub = protowire.AppendVarint(sub, uint64(r.Origin))
		sub = protowire.AppendTag(sub, regionLength, protowire.VarintType)
		sub = protowire.AppendVarint(sub, uint64(r.Length))

		b = protowire.AppendTag(b, fieldRegion, protowire.BytesType)
		b = protowire.AppendBytes(b, sub)
	}
	return b
}

// ParseMap decodes a map encoded with AppendMap and re-validates it, so
// a decoded map upholds the same invariants as an authored one.
func ParseMap(b []byte) (*MemoryMap, error) {
	m := NewMemoryMap()
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		if num != fieldRegion || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}
		sub, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		name, origin, length, err := parseRegion(sub)
		if err != nil {
			return nil, err
		}
		if err := m.Define(name, origin, length); err != nil {
			return nil, err
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseRegion(b []byte) (name string, origin, length uint32, err error) {
	var haveName bool
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return "", 0, 0, protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == regionName && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(b)
			if n < 0 {
				return "", 0, 0, protowire.ParseError(n)
			}
			b = b[n:]
			name, haveName = s, true
		case num == regionOrigin && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return "", 0, 0, protowire.ParseError(n)
			}
			b = b[n:]
			if v > math.MaxUint32 {
				return "", 0, 0, fmt.Errorf("%w: origin %#x", AddressOverflow, v)
			}
			origin = uint32(v)
		case num == regionLength && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return "", 0, 0, protowire.ParseError(n)
			}
			b = b[n:]
			if v > math.MaxUint32 {
				return "", 0, 0, fmt.Errorf("length %#x does not fit 32 bits", v)
			}
			length = uint32(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return "", 0, 0, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	if !haveName {
		return "", 0, 0, truncatedMap
	}
	return name, origin, length, nil
}
