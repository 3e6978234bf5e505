// internal/event/queue.go
package event

// Queue is a FIFO of pending items drained once per tick.
// Single-threaded: producers and the consumer run on the game loop.
type Queue[T any] struct {
	items []T
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends an item; it becomes visible to the next Drain.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Drain returns every pending item in submission order and empties the queue.
// Items pushed while the caller iterates the result wait for the next Drain.
func (q *Queue[T]) Drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	drained := q.items
	q.items = nil
	return drained
}

func (q *Queue[T]) Len() int {
	return len(q.items)
}
