package stm32

import (
	"context"
	"fmt"

	"github.com/kmsz/go-stm32/stm32/config"
	"github.com/kmsz/go-stm32/stm32/config/target"
)

func loadMemConfig(path string) (*config.MemoryConfig, error) {
	ctx := context.Background()
	mem, err := config.LoadFromPath(ctx, path)
	if err != nil {
		return nil, err
	}
	return mem, nil
}

// LoadMap evaluates the Pkl memory configuration at path and returns
// the validated map declared for the given target.
func LoadMap(path string, t target.Target) (*MemoryMap, error) {
	conf, err := loadMemConfig(path)
	if err != nil {
		return nil, err
	}
	for chip, decl := range conf.Maps {
		if chip != t {
			continue
		}
		return FromConfig(decl)
	}
	return nil, fmt.Errorf("target %s is not registered", t)
}

// FromConfig converts an evaluated configuration map into a validated
// MemoryMap.
func FromConfig(decl *config.MemoryMap) (*MemoryMap, error) {
	m := NewMemoryMap()
	for _, r := range decl.Regions {
		if err := m.Define(r.Name, r.Origin, r.Length); err != nil {
			return nil, err
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
