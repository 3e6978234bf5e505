// internal/event/types.go
package event

import (
	"grid-tactics/internal/types"
	"grid-tactics/pkg/gridmap"

	"github.com/google/uuid"
)

const (
	TurnApplied        EventType = "TurnApplied"        // Ход применён
	TurnRejected       EventType = "TurnRejected"       // Предложение хода отклонено
	UnitDefeated       EventType = "UnitDefeated"       // HP юнита дошло до 0
	AnnotationsChanged EventType = "AnnotationsChanged" // Флаги подсветки изменились
)

// ActionKind — что юнит делает после перемещения
type ActionKind uint8

const (
	ActionWait ActionKind = iota
	ActionAttack
)

func (k ActionKind) String() string {
	switch k {
	case ActionWait:
		return "wait"
	case ActionAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// Action is Wait, or Attack against Target.
type Action struct {
	Kind   ActionKind
	Target types.EntityID
}

func Wait() Action { return Action{Kind: ActionWait} }

func Attack(target types.EntityID) Action {
	return Action{Kind: ActionAttack, Target: target}
}

// TurnProposal is a move-and-act request built by input handling. Start is
// where the proposer believes the actor stands.
type TurnProposal struct {
	ID     uuid.UUID
	Actor  types.EntityID
	Start  gridmap.Coord
	End    gridmap.Coord
	Action Action
}

// ValidatedTurn is a proposal that passed every check, fields unchanged.
type ValidatedTurn struct {
	TurnProposal
}

// RejectReason tells the display layer why a proposal was dropped.
type RejectReason string

const (
	RejectUnknownActor RejectReason = "unknown actor"
	RejectNotReady     RejectReason = "initiative not full"
	RejectStaleStart   RejectReason = "stale start position"
	RejectUnreachable  RejectReason = "destination unreachable"
)

// TurnRejection is the payload of TurnRejected.
type TurnRejection struct {
	Proposal TurnProposal
	Reason   RejectReason
}

// Defeat is the payload of UnitDefeated.
type Defeat struct {
	Unit     types.EntityID
	Attacker types.EntityID
}

// AnnotationChange is the payload of AnnotationsChanged.
type AnnotationChange struct {
	Coords []gridmap.Coord
}
