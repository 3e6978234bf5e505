// internal/defs/scenario.go
package defs

// CellDef is one authored cell of the level's int grid.
type CellDef struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Value int `json:"value"`
}

// PlacementDef puts one unit of an archetype on the field.
type PlacementDef struct {
	UnitID     string   `json:"unit"`
	Name       string   `json:"name,omitempty"`
	Team       int      `json:"team"`
	X          int      `json:"x"`
	Y          int      `json:"y"`
	Initiative *float64 `json:"initiative,omitempty"` // nil — начинает с нуля
	HP         *int     `json:"hp,omitempty"`         // nil — полное здоровье
}

// ScenarioDefinition is everything needed to set up a battle: the tile index
// (Width x Height), the authored cells, the archetypes and the roster.
type ScenarioDefinition struct {
	Name       string           `json:"name"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Cells      []CellDef        `json:"cells"`
	Units      []UnitDefinition `json:"units"`
	Placements []PlacementDef   `json:"placements"`
}

// UnitLibrary indexes the scenario's archetypes by ID.
func (s *ScenarioDefinition) UnitLibrary() map[string]UnitDefinition {
	library := make(map[string]UnitDefinition, len(s.Units))
	for _, def := range s.Units {
		library[def.ID] = def
	}
	return library
}
