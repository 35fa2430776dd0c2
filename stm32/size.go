package stm32

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is a memory length in bytes.
type Size uint64

// Scale suffixes accepted in human-authored region lengths.
const (
	Byte Size = 1
	Kb        = 1024 * Byte
	Mb        = 1024 * Kb
)

// ParseSize parses a length in the notation used by linker scripts:
// a decimal, octal or hex number with an optional K or M suffix.
func ParseSize(s string) (Size, error) {
	scale := Byte
	switch {
	case strings.HasSuffix(s, "K"), strings.HasSuffix(s, "k"):
		scale = Kb
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "M"), strings.HasSuffix(s, "m"):
		scale = Mb
		s = s[:len(s)-1]
	}
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	return Size(n) * scale, nil
}

// String renders the size with the largest exact suffix, the form a
// linker script author would write.
func (s Size) String() string {
	switch {
	case s >= Mb && s%Mb == 0:
		return fmt.Sprintf("%dM", s/Mb)
	case s >= Kb && s%Kb == 0:
		return fmt.Sprintf("%dK", s/Kb)
	}
	return strconv.FormatUint(uint64(s), 10)
}
