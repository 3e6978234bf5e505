// internal/types/types.go
package types

import "strconv"

// EntityID — стабильный идентификатор сущности в арене ECS. 0 означает "нет сущности".
type EntityID uint64

// NoEntity is the zero id, never handed out by the arena.
const NoEntity EntityID = 0

func (id EntityID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}
