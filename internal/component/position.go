// internal/component/position.go
package component

import "grid-tactics/pkg/gridmap"

// GridPosition — компонент позиции юнита на сетке
type GridPosition struct {
	Coord gridmap.Coord
}
