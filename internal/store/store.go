// Package store holds the per-feature state containers the screens read.
// Each container owns an isLoading/error/data tri-state, mutates it only
// from its own fetch action, and notifies subscribers after every change.
//
// Failure never clears previously fetched data: screens keep rendering the
// last-known-good payload next to the error banner. If two fetches against
// the same container overlap, the last response to resolve wins; there is
// no request sequencing (see DESIGN.md).
package store

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"civicworks/internal/gateway"
)

// Stores bundles every container over one shared gateway client.
type Stores struct {
	Complaints    *Complaints
	Detail        *Detail
	Stats         *Stats
	Projects      *Projects
	Assignments   *Assignments
	StatusUpdates *StatusUpdates
	Selections    *Selections
}

// New wires all containers to the given gateway client.
func New(gw gateway.Client, logger *zap.Logger) *Stores {
	return &Stores{
		Complaints:    NewComplaints(gw, logger),
		Detail:        NewDetail(gw, logger),
		Stats:         NewStats(gw, logger),
		Projects:      NewProjects(gw, logger),
		Assignments:   NewAssignments(gw, logger),
		StatusUpdates: NewStatusUpdates(gw, logger),
		Selections:    NewSelections(),
	}
}

// notifier fans out change notifications to subscribed readers. Callbacks
// run synchronously on the mutating goroutine and must not call back into
// the container's write methods.
type notifier struct {
	mu   sync.Mutex
	subs map[int]func()
	next int
}

// Subscribe registers fn to run after every state change and returns an
// unsubscribe function.
func (n *notifier) Subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.next
	n.next++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// errorMessage picks the message a container stores for a failed action:
// the server's message when the API rejected the request, otherwise the
// error text, otherwise the feature's generic fallback.
func errorMessage(err error, fallback string) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
