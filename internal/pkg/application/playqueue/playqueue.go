package playqueue

import (
	"context"
	"slices"
	"sync"

	"github.com/diwise/library-resolver/internal/pkg/application/resolver"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

const (
	ExtraPlayNext   string = "play_next"
	ExtraAtPosition string = "at_position"
)

type Entry struct {
	ID   string        `json:"id"`
	URI  string        `json:"uri"`
	From resolver.From `json:"from"`
}

// Queue is the list of uris lined up for playback
type Queue struct {
	mu sync.Mutex

	entries []Entry
	current int
}

func New() *Queue {
	return &Queue{current: -1}
}

// Enqueue adds the requested uris to the queue. By default they are appended,
// "play_next" places them right after the current entry and "at_position"
// inserts them at the given index.
func (q *Queue) Enqueue(ctx context.Context, req resolver.PlaybackRequest) []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	added := newEntries(req)
	position := q.insertPosition(req.Extra)

	q.entries = slices.Insert(q.entries, position, added...)
	if q.current >= position {
		q.current += len(added)
	}

	logging.GetFromContext(ctx).Debug("enqueued uris", "count", len(added), "position", position)

	return slices.Clone(added)
}

// Play replaces the queue with the requested uris and starts at the first one
func (q *Queue) Play(ctx context.Context, req resolver.PlaybackRequest) []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = newEntries(req)
	q.current = -1
	if len(q.entries) > 0 {
		q.current = 0
	}

	logging.GetFromContext(ctx).Debug("playing uris", "count", len(q.entries))

	return slices.Clone(q.entries)
}

func (q *Queue) Entries() []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	return slices.Clone(q.entries)
}

func (q *Queue) Current() (Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.current < 0 || q.current >= len(q.entries) {
		return Entry{}, false
	}

	return q.entries[q.current], true
}

func (q *Queue) insertPosition(extra map[string]any) int {
	if pos, ok := toInt(extra[ExtraAtPosition]); ok {
		return max(0, min(pos, len(q.entries)))
	}

	if playNext, ok := extra[ExtraPlayNext].(bool); ok && playNext {
		return q.current + 1
	}

	return len(q.entries)
}

func newEntries(req resolver.PlaybackRequest) []Entry {
	entries := make([]Entry, 0, len(req.URIs))

	for _, uri := range req.URIs {
		entries = append(entries, Entry{
			ID:   uuid.NewString(),
			URI:  uri,
			From: req.From,
		})
	}

	return entries
}

// toInt accepts the numeric types that show up in decoded json as well as ints
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
