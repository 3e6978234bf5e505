// internal/defs/units.go
package defs

// UnitDefinition holds the static stats of a unit archetype.
type UnitDefinition struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	MaxInitiative float64 `json:"max_initiative"`
	MaxHP         int     `json:"max_hp"`
	Speed         int     `json:"speed"`
	Ranges        []int   `json:"ranges"` // Точные дистанции атаки, не радиусы заливки
	Attack        int     `json:"attack"`
	Armor         int     `json:"armor"`
}
