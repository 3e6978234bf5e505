// internal/system/system.go
package system

// System is one stage of the tick pipeline.
type System interface {
	Update(deltaTime float64)
}
