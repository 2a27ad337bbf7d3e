package console

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// DefaultResyncDelay is how long the controller waits after a mutation
// before reconciling the whole mirror with the store. Mutations within
// the window coalesce into one refetch.
const DefaultResyncDelay = 2 * time.Second

// PendingDelete is the confirmation gate for one destructive action.
type PendingDelete struct {
	Kind string
	ID   string
}

// ActiveForm points at the record a form overlay is editing. A nil
// Record means "create".
type ActiveForm struct {
	Kind   string
	Record Record
}

// Controller owns the local mirror of one dashboard's collections.
// All methods are safe for concurrent use; the background resync runs
// off a timer goroutine.
type Controller struct {
	gw          Gateway
	specs       []ResourceSpec
	statsFn     StatsFunc
	resyncDelay time.Duration

	mu            sync.Mutex
	collections   map[string][]Record
	stats         map[string]int
	pendingDelete *PendingDelete
	activeForm    *ActiveForm
	loading       bool
	loaded        bool
	deleting      map[string]struct{} // kind/id pairs with a DELETE in flight
	resyncTimer   *time.Timer
}

// NewController builds a dashboard controller over the given resource
// collections. statsFn may be nil if the dashboard has no counters.
func NewController(gw Gateway, specs []ResourceSpec, statsFn StatsFunc) *Controller {
	return &Controller{
		gw:          gw,
		specs:       specs,
		statsFn:     statsFn,
		resyncDelay: DefaultResyncDelay,
		collections: make(map[string][]Record),
		stats:       make(map[string]int),
		deleting:    make(map[string]struct{}),
	}
}

// SetResyncDelay overrides the debounce window for background
// reconciliation. A zero delay makes resyncs synchronous, which the
// tests rely on.
func (ctl *Controller) SetResyncDelay(d time.Duration) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.resyncDelay = d
}

func (ctl *Controller) spec(kind string) (ResourceSpec, bool) {
	for _, s := range ctl.specs {
		if s.Kind == kind {
			return s, true
		}
	}
	return ResourceSpec{}, false
}

// LoadAll fetches every collection in parallel and replaces the mirror
// wholesale once all fetches have settled. A failed fetch empties that
// one collection and is logged; it never aborts the others, so the
// dashboard degrades to partially-populated rather than all-zero.
// Safe to call repeatedly; used on mount and after every mutation.
func (ctl *Controller) LoadAll(ctx context.Context) {
	ctl.mu.Lock()
	if !ctl.loaded {
		ctl.loading = true
	}
	ctl.mu.Unlock()

	fresh := make(map[string][]Record, len(ctl.specs))
	var fmu sync.Mutex
	var wg sync.WaitGroup

	for _, s := range ctl.specs {
		wg.Add(1)
		go func(s ResourceSpec) {
			defer wg.Done()
			records, err := ctl.gw.List(ctx, s.Path)
			if err != nil {
				log.Printf("console: loading %s failed: %v", s.Kind, err)
				records = nil
			}
			fmu.Lock()
			fresh[s.Kind] = records
			fmu.Unlock()
		}(s)
	}
	wg.Wait()

	// All-or-nothing swap: the mirror never shows a half-replaced set
	// of collections, so derived stats are always computed from one
	// consistent snapshot.
	ctl.mu.Lock()
	ctl.collections = fresh
	ctl.recomputeStatsLocked()
	ctl.loading = false
	ctl.loaded = true
	ctl.mu.Unlock()
}

func (ctl *Controller) recomputeStatsLocked() {
	if ctl.statsFn == nil {
		ctl.stats = map[string]int{}
		return
	}
	ctl.stats = ctl.statsFn(ctl.collections)
}

// MutateStatus PATCHes a status change and, only once the server
// confirms it, applies an in-place ordered replace on the local copy.
// A background resync is then scheduled so cross-cutting counters
// cannot drift for long.
func (ctl *Controller) MutateStatus(ctx context.Context, kind, id, newStatus string) error {
	s, ok := ctl.spec(kind)
	if !ok {
		return fmt.Errorf("console: unknown resource kind %q", kind)
	}

	_, err := ctl.gw.Patch(ctx, s.Path, Record{"id": id, "status": newStatus})
	if err != nil {
		return err
	}

	ctl.mu.Lock()
	list := ctl.collections[kind]
	for i, rec := range list {
		if rec.ID() == id {
			patched := rec.clone()
			patched["status"] = newStatus
			list[i] = patched
			break
		}
	}
	ctl.recomputeStatsLocked()
	ctl.mu.Unlock()

	ctl.scheduleResync()
	return nil
}

// RequestDelete arms the confirmation gate. No network call.
func (ctl *Controller) RequestDelete(kind, id string) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.pendingDelete = &PendingDelete{Kind: kind, ID: id}
}

// CancelDelete disarms the gate. No network call.
func (ctl *Controller) CancelDelete() {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.pendingDelete = nil
}

// ConfirmDelete issues the DELETE for the armed record: at most one
// per id, even if confirm is clicked again while the round-trip is in
// flight. On success the record is dropped locally and a resync is
// scheduled; the gate clears either way.
func (ctl *Controller) ConfirmDelete(ctx context.Context) error {
	ctl.mu.Lock()
	pending := ctl.pendingDelete
	if pending == nil {
		ctl.mu.Unlock()
		return nil
	}
	key := pending.Kind + "/" + pending.ID
	if _, busy := ctl.deleting[key]; busy {
		ctl.mu.Unlock()
		return nil
	}
	ctl.deleting[key] = struct{}{}
	ctl.mu.Unlock()

	defer func() {
		ctl.mu.Lock()
		delete(ctl.deleting, key)
		ctl.mu.Unlock()
	}()

	s, ok := ctl.spec(pending.Kind)
	if !ok {
		ctl.CancelDelete()
		return fmt.Errorf("console: unknown resource kind %q", pending.Kind)
	}

	if err := ctl.gw.Delete(ctx, s.Path, pending.ID); err != nil {
		ctl.mu.Lock()
		ctl.pendingDelete = nil
		ctl.mu.Unlock()
		return err
	}

	ctl.mu.Lock()
	list := ctl.collections[pending.Kind]
	kept := list[:0]
	for _, rec := range list {
		if rec.ID() != pending.ID {
			kept = append(kept, rec)
		}
	}
	ctl.collections[pending.Kind] = kept
	ctl.pendingDelete = nil
	ctl.recomputeStatsLocked()
	ctl.mu.Unlock()

	ctl.scheduleResync()
	return nil
}

// OpenForm points the form overlay at a record (nil = create).
func (ctl *Controller) OpenForm(kind string, record Record) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.activeForm = &ActiveForm{Kind: kind, Record: record}
}

// CloseForm dismisses the overlay.
func (ctl *Controller) CloseForm() {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.activeForm = nil
}

// scheduleResync arms (or re-arms) the debounced reconciliation timer.
// Every mutation funnels through here, so bursts of edits settle into
// a single full refetch.
func (ctl *Controller) scheduleResync() {
	ctl.mu.Lock()
	delay := ctl.resyncDelay
	if ctl.resyncTimer != nil {
		ctl.resyncTimer.Stop()
		ctl.resyncTimer = nil
	}
	if delay > 0 {
		ctl.resyncTimer = time.AfterFunc(delay, func() {
			ctl.LoadAll(context.Background())
		})
	}
	ctl.mu.Unlock()

	if delay == 0 {
		ctl.LoadAll(context.Background())
	}
}

// Collection returns a copy of one mirrored collection in store order.
func (ctl *Controller) Collection(kind string) []Record {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	list := ctl.collections[kind]
	out := make([]Record, len(list))
	copy(out, list)
	return out
}

// Stats returns a copy of the derived counters.
func (ctl *Controller) Stats() map[string]int {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	out := make(map[string]int, len(ctl.stats))
	for k, v := range ctl.stats {
		out[k] = v
	}
	return out
}

// PendingDelete returns the armed confirmation gate, or nil.
func (ctl *Controller) PendingDelete() *PendingDelete {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.pendingDelete == nil {
		return nil
	}
	pd := *ctl.pendingDelete
	return &pd
}

// ActiveForm returns the open form target, or nil.
func (ctl *Controller) ActiveForm() *ActiveForm {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.activeForm == nil {
		return nil
	}
	af := *ctl.activeForm
	return &af
}

// Loading reports whether the initial bulk fetch is still running.
func (ctl *Controller) Loading() bool {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.loading
}
