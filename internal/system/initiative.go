// internal/system/initiative.go
package system

import (
	"grid-tactics/internal/config"
	"grid-tactics/internal/entity"
)

// InitiativeSystem заряжает инициативу всех живых юнитов
type InitiativeSystem struct {
	ecs  *entity.ECS
	rate float64
}

func NewInitiativeSystem(ecs *entity.ECS) *InitiativeSystem {
	return &InitiativeSystem{ecs: ecs, rate: config.InitiativeRate}
}

func (s *InitiativeSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	for _, unit := range s.ecs.Units {
		unit.Charge(deltaTime * s.rate)
	}
}
