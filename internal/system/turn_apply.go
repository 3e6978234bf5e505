// internal/system/turn_apply.go
package system

import (
	"grid-tactics/internal/component"
	"grid-tactics/internal/entity"
	"grid-tactics/internal/event"
	"grid-tactics/pkg/logger"

	"github.com/sirupsen/logrus"
)

// TurnApplySystem is the only writer of unit position, initiative and HP
// (besides initiative charging).
type TurnApplySystem struct {
	ecs             *entity.ECS
	validated       *event.Queue[event.ValidatedTurn]
	eventDispatcher *event.Dispatcher
}

func NewTurnApplySystem(ecs *entity.ECS, validated *event.Queue[event.ValidatedTurn], eventDispatcher *event.Dispatcher) *TurnApplySystem {
	return &TurnApplySystem{
		ecs:             ecs,
		validated:       validated,
		eventDispatcher: eventDispatcher,
	}
}

func (s *TurnApplySystem) Update(deltaTime float64) {
	for _, turn := range s.validated.Drain() {
		s.Apply(turn)
	}
}

// Apply moves the actor, resets its initiative and resolves the action.
// If the actor or the attack target vanished since validation the whole turn
// is skipped and false is returned.
func (s *TurnApplySystem) Apply(turn event.ValidatedTurn) bool {
	fields := logrus.Fields{"turn": turn.ID, "actor": s.ecs.Name(turn.Actor)}

	// Сначала разрешаем всех участников, потом меняем состояние: без частичных эффектов
	actor, pos, ok := s.ecs.UnitAt(turn.Actor)
	if !ok {
		logger.Log.WithFields(fields).Debug("turn skipped: actor not found")
		return false
	}
	var target *component.Unit
	if turn.Action.Kind == event.ActionAttack {
		target, ok = s.ecs.Units[turn.Action.Target]
		if !ok {
			fields["target"] = turn.Action.Target
			logger.Log.WithFields(fields).Debug("turn skipped: target not found")
			return false
		}
	}

	pos.Coord = turn.End
	actor.ResetInitiative()

	if target != nil {
		// Броня пока не учитывается: урон равен силе атаки
		if target.TakeDamage(actor.Attack) {
			logger.Log.WithFields(fields).WithField("target", s.ecs.Name(turn.Action.Target)).Info("unit defeated")
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.UnitDefeated,
				Data: event.Defeat{Unit: turn.Action.Target, Attacker: turn.Actor},
			})
		}
	}

	logger.Log.WithFields(fields).WithFields(logrus.Fields{
		"to":     turn.End,
		"action": turn.Action.Kind,
	}).Debug("turn applied")
	s.eventDispatcher.Dispatch(event.Event{Type: event.TurnApplied, Data: turn})
	return true
}
