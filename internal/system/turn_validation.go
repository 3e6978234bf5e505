// internal/system/turn_validation.go
package system

import (
	"grid-tactics/internal/entity"
	"grid-tactics/internal/event"
	"grid-tactics/internal/types"
	"grid-tactics/pkg/logger"

	"github.com/sirupsen/logrus"
)

// TurnValidationSystem drains turn proposals and forwards the legal ones.
// It never mutates units.
type TurnValidationSystem struct {
	ecs             *entity.ECS
	proposals       *event.Queue[event.TurnProposal]
	validated       *event.Queue[event.ValidatedTurn]
	eventDispatcher *event.Dispatcher
}

func NewTurnValidationSystem(ecs *entity.ECS,
	proposals *event.Queue[event.TurnProposal],
	validated *event.Queue[event.ValidatedTurn],
	eventDispatcher *event.Dispatcher) *TurnValidationSystem {
	return &TurnValidationSystem{
		ecs:             ecs,
		proposals:       proposals,
		validated:       validated,
		eventDispatcher: eventDispatcher,
	}
}

func (s *TurnValidationSystem) Update(deltaTime float64) {
	// An actor with a validated turn in this pass is already acting: its
	// initiative is spent even though the applier has not run yet.
	acting := make(map[types.EntityID]struct{})
	for _, proposal := range s.proposals.Drain() {
		if _, busy := acting[proposal.Actor]; busy {
			s.reject(proposal, event.RejectNotReady)
			continue
		}
		if turn, ok := s.Validate(proposal); ok {
			acting[proposal.Actor] = struct{}{}
			s.validated.Push(turn)
		}
	}
}

// Validate runs the checks in order and returns the validated turn, or false
// with no side effect on the battle.
func (s *TurnValidationSystem) Validate(p event.TurnProposal) (event.ValidatedTurn, bool) {
	if reason, ok := s.check(p); !ok {
		s.reject(p, reason)
		return event.ValidatedTurn{}, false
	}
	return event.ValidatedTurn{TurnProposal: p}, true
}

func (s *TurnValidationSystem) reject(p event.TurnProposal, reason event.RejectReason) {
	logger.Log.WithFields(logrus.Fields{
		"turn":   p.ID,
		"actor":  s.ecs.Name(p.Actor),
		"start":  p.Start,
		"end":    p.End,
		"reason": reason,
	}).Debug("turn proposal rejected")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TurnRejected,
		Data: event.TurnRejection{Proposal: p, Reason: reason},
	})
}

func (s *TurnValidationSystem) check(p event.TurnProposal) (event.RejectReason, bool) {
	// 1. Актёр существует и не повержен
	unit, pos, ok := s.ecs.UnitAt(p.Actor)
	if !ok || unit.Defeated {
		return event.RejectUnknownActor, false
	}

	// 2. Шкала инициативы заполнена
	if unit.Initiative != unit.MaxInitiative {
		return event.RejectNotReady, false
	}

	// 3. Предложение построено по актуальной позиции
	if pos.Coord != p.Start {
		return event.RejectStaleStart, false
	}

	// 4. Клетка назначения достижима; своя клетка достижима всегда
	reachable, ok := ReachableTiles(s.ecs, p.Actor)
	if !ok || !reachable.Has(p.End) {
		return event.RejectUnreachable, false
	}
	return "", true
}
