// internal/component/annotation.go
package component

// Annotation is the derived highlight state of one tile. Only the annotation
// pass writes it; the renderer reads both flags to pick a highlight.
type Annotation struct {
	Reachable     bool // Юнит может дойти до клетки в этот ход
	AttackMovable bool // Клетка на точной дистанции атаки от какой-то достижимой клетки
}
