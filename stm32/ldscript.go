package stm32

import (
	"fmt"
	"strings"
)

// LinkerScript renders the map as a GNU ld MEMORY command, the memory.x
// form consumed by downstream link steps. Regions appear in authoring
// order with lengths in suffix notation.
func (m *MemoryMap) LinkerScript() string {
	var b strings.Builder
	b.WriteString("MEMORY\n{\n")
	for _, r := range m.regions {
		fmt.Fprintf(&b, "  %s : ORIGIN = %#010x, LENGTH = %s\n", r.Name, r.Origin, Size(r.Length))
	}
	b.WriteString("}\n")
	return b.String()
}
