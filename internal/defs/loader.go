// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path"

	"grid-tactics/pkg/logger"

	"github.com/sirupsen/logrus"
)

//go:embed scenarios/*.json
var builtinScenarios embed.FS

// LoadScenario reads a scenario file from disk.
func LoadScenario(filePath string) (*ScenarioDefinition, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// BuiltinScenario loads one of the scenarios compiled into the binary.
func BuiltinScenario(name string) (*ScenarioDefinition, error) {
	data, err := builtinScenarios.ReadFile(path.Join("scenarios", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("unknown builtin scenario %q: %w", name, err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and checks a scenario. Unknown terrain values are
// fine (they load as blocking tiles); broken references are not.
func ParseScenario(data []byte) (*ScenarioDefinition, error) {
	var scenario ScenarioDefinition
	if err := json.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if err := scenario.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", scenario.Name, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"scenario": scenario.Name,
		"size":     fmt.Sprintf("%dx%d", scenario.Width, scenario.Height),
		"cells":    len(scenario.Cells),
		"units":    len(scenario.Placements),
	}).Info("scenario loaded")
	return &scenario, nil
}

func (s *ScenarioDefinition) validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("negative map size %dx%d", s.Width, s.Height)
	}
	maxRange := s.maxRange()
	library := make(map[string]struct{}, len(s.Units))
	for _, def := range s.Units {
		if _, dup := library[def.ID]; dup {
			return fmt.Errorf("duplicate unit definition %q", def.ID)
		}
		for _, r := range def.Ranges {
			if r > maxRange {
				return fmt.Errorf("unit %q range %d exceeds map span %d", def.ID, r, maxRange)
			}
		}
		library[def.ID] = struct{}{}
	}
	for i, p := range s.Placements {
		if _, ok := library[p.UnitID]; !ok {
			return fmt.Errorf("placement %d references unknown unit %q", i, p.UnitID)
		}
		if p.X < 0 || p.Y < 0 {
			return fmt.Errorf("placement %d at negative position (%d,%d)", i, p.X, p.Y)
		}
	}
	return nil
}

// maxRange is the longest Manhattan distance inside the map's bounding box,
// authored cells outside the tile index included.
func (s *ScenarioDefinition) maxRange() int {
	w, h := s.Width, s.Height
	for _, c := range s.Cells {
		if c.X+1 > w {
			w = c.X + 1
		}
		if c.Y+1 > h {
			h = c.Y + 1
		}
	}
	return w + h
}
