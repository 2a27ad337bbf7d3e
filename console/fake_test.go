package console_test

import (
	"context"
	"sync"

	"edusite/console"
)

// fakeGateway is an in-memory Gateway that records every call, so the
// tests can assert exactly which network traffic a controller action
// produced.
type fakeGateway struct {
	mu sync.Mutex

	lists map[string][]console.Record // keyed by path

	listCalls   map[string]int
	patchCalls  []console.Record
	deleteCalls []string
	insertCalls []console.Record
	updateCalls []console.Record

	listErr   map[string]error
	patchErr  error
	insertErr error
	updateErr error
	deleteErr error

	// deleteGate, when non-nil, blocks Delete until it is closed.
	deleteGate chan struct{}
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		lists:     make(map[string][]console.Record),
		listCalls: make(map[string]int),
		listErr:   make(map[string]error),
	}
}

func (g *fakeGateway) List(_ context.Context, path string) ([]console.Record, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listCalls[path]++
	if err := g.listErr[path]; err != nil {
		return nil, err
	}
	out := make([]console.Record, len(g.lists[path]))
	copy(out, g.lists[path])
	return out, nil
}

func (g *fakeGateway) Insert(_ context.Context, path string, fields console.Record) (console.Record, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.insertCalls = append(g.insertCalls, fields)
	if g.insertErr != nil {
		return nil, g.insertErr
	}
	return fields, nil
}

func (g *fakeGateway) Update(_ context.Context, path, id string, fields console.Record) (console.Record, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateCalls = append(g.updateCalls, fields)
	if g.updateErr != nil {
		return nil, g.updateErr
	}
	return fields, nil
}

func (g *fakeGateway) Patch(_ context.Context, path string, fields console.Record) (console.Record, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.patchCalls = append(g.patchCalls, fields)
	if g.patchErr != nil {
		return nil, g.patchErr
	}
	return fields, nil
}

func (g *fakeGateway) Delete(_ context.Context, path, id string) error {
	g.mu.Lock()
	g.deleteCalls = append(g.deleteCalls, id)
	gate := g.deleteGate
	err := g.deleteErr
	g.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return err
}

func (g *fakeGateway) listCount(path string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.listCalls[path]
}

func (g *fakeGateway) deleteCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.deleteCalls)
}

func (g *fakeGateway) patchCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.patchCalls)
}
