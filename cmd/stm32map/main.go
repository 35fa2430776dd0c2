// The stm32map tool prints, renders and checks STM32F1 memory maps.
// With only a target it prints the region table; -l renders the
// memory.x MEMORY block for the selected map and -i verifies that an
// Intel HEX image fits inside the declared regions.
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog"

	"github.com/kmsz/go-stm32/stm32"
	"github.com/kmsz/go-stm32/stm32/config/target"
)

var (
	chip       = flag.String("t", "STM32F103C6", "target part number")
	configFile = flag.String("c", "", "Pkl memory configuration (default: builtin part table)")
	ldscript   = flag.Bool("l", false, "render the map as a linker script MEMORY command")
	imageFile  = flag.String("i", "", "Intel HEX image to check against the map")
)

func main() {
	flag.Parse()

	var t target.Target
	if err := t.UnmarshalBinary([]byte(*chip)); err != nil {
		klog.Exitf("Invalid target: %v", err)
	}

	m, err := selectMap(t)
	if err != nil {
		klog.Exitf("Failed to load memory map: %v", err)
	}

	switch {
	case *ldscript:
		fmt.Print(m.LinkerScript())
	case *imageFile != "":
		if err := check(m, *imageFile); err != nil {
			klog.Exitf("Image check failed: %v", err)
		}
	default:
		for _, r := range m.Regions() {
			fmt.Println(r)
		}
	}
}

func selectMap(t target.Target) (*stm32.MemoryMap, error) {
	if *configFile != "" {
		return stm32.LoadMap(*configFile, t)
	}
	return stm32.TargetMap(t)
}

func check(m *stm32.MemoryMap, name string) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	placements, err := stm32.CheckImage(m, b)
	if err != nil {
		return err
	}
	for _, p := range placements {
		klog.Infof("%#010x + %d bytes fits %s", p.Address, p.Size, p.Region.Name)
	}
	return nil
}
