// pkg/gridmap/reachable.go
package gridmap

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"
)

// Reachable returns every cell a unit standing on start can enter with the
// given movement budget. The start cell is always part of the result, even
// when its own tile is blocking or missing.
//
// Tile costs differ, so the frontier is a min-heap on accumulated cost rather
// than a plain BFS queue. Entry cost belongs to the entered tile, so the first
// time a cell is reached it is reached at its cheapest cost and it is never
// expanded again.
func Reachable(gm *GridMap, start Coord, speed int) mapset.Set[Coord] {
	reached := mapset.New[Coord]()
	reached.Put(start)
	if speed <= 0 {
		return reached
	}

	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Coord: start, Cost: 0})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		for _, neighbor := range current.Coord.Neighbors(gm) {
			if reached.Has(neighbor) {
				continue
			}
			tile, _ := gm.Lookup(neighbor)
			if !tile.Passable {
				continue
			}
			newCost := current.Cost + tile.MoveCost
			if newCost > speed {
				continue
			}
			reached.Put(neighbor)
			heap.Push(pq, &Node{Coord: neighbor, Cost: newCost})
		}
	}
	return reached
}

// Node is a frontier entry of the reachability search.
type Node struct {
	Coord Coord
	Cost  int
}

// PriorityQueue is a min-heap of nodes ordered by cost, then by coordinate,
// so equal-cost expansion is deterministic.
type PriorityQueue []*Node

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost < pq[j].Cost
	}
	return pq[i].Coord.Less(pq[j].Coord)
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[0 : n-1]
	return item
}
