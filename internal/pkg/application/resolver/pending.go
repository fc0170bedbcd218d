package resolver

import (
	"context"

	"github.com/diwise/library-resolver/pkg/library/types"
)

type Outcome int

const (
	Refetched Outcome = iota
	ServedFromIndex
	RestoredFromColdStore
	Fetched
)

func (o Outcome) String() string {
	switch o {
	case Refetched:
		return "refetched"
	case ServedFromIndex:
		return "index"
	case RestoredFromColdStore:
		return "coldstore"
	case Fetched:
		return "fetched"
	default:
		return "unknown"
	}
}

type Result struct {
	Outcome Outcome
	// Entity is the entity that satisfied the request, when it was found in the
	// index or the cold store
	Entity types.Entity
	// Restored counts the dependents that were hydrated from the cold store
	Restored int
	// ColdStoreErr holds a cold store failure that was recovered from by fetching
	ColdStoreErr error
}

// Pending tracks a resolution that may still be running in the background
type Pending struct {
	done   chan struct{}
	result Result
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func (p *Pending) complete(result Result) {
	p.result = result
	close(p.done)
}

// Done is closed when the resolution has completed
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

func (p *Pending) Wait(ctx context.Context) (Result, error) {
	select {
	case <-p.done:
		return p.result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Completed returns a Pending that has already finished with result
func Completed(result Result) *Pending {
	p := newPending()
	p.complete(result)
	return p
}
