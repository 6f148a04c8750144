// Package bfs provides breadth-first search over any neighbor relation,
// returning unweighted shortest paths, parent links, and visit order.
//
// The same walker serves literal graph adjacency (ShortestPath) and
// attribute-derived relations such as club co-membership (Search).
package bfs

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	nbrs  NeighborFunc
	opts  Options
	ctx   context.Context
	queue *linkedlistqueue.Queue
	res   *Result

	// target search: stop as soon as target is dequeued
	target    string
	hasTarget bool
	found     bool
}

// newWalker resolves options and prepares an empty traversal state.
func newWalker(nbrs NeighborFunc, opts []Option) (*walker, error) {
	if nbrs == nil {
		return nil, ErrNilNeighborFunc
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker{
		nbrs:  nbrs,
		opts:  o,
		ctx:   o.Ctx,
		queue: linkedlistqueue.New(),
		res: &Result{
			Order:  []string{},
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}, nil
}

// Walk runs a full breadth-first traversal from start over nbrs.
// The start vertex is not validated: it is always visited first, and
// the relation decides what is reachable from it.
func Walk(start string, nbrs NeighborFunc, opts ...Option) (*Result, error) {
	w, err := newWalker(nbrs, opts)
	if err != nil {
		return nil, err
	}
	w.enqueue(start, 0, "", false)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue. The Depth map doubles as the visited set.
func (w *walker) enqueue(id string, d int, parent string, hasParent bool) {
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue.Enqueue(queueItem{id: id, depth: d})
}

// loop processes the queue until empty, target found, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.hasTarget && item.id == w.target {
			w.found = true
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	v, _ := w.queue.Dequeue()
	item := v.(queueItem)
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.nbrs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, nextDepth, item.id, true)
		}
	}
	return nil
}
