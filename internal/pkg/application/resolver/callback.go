package resolver

import (
	"context"

	"github.com/diwise/library-resolver/pkg/library/entities"
	"github.com/diwise/library-resolver/pkg/library/types"
)

// CallbackAction is something to do with an entity once it is available.
// The set of actions is closed: *Enqueue, *Play or nil for none.
type CallbackAction interface {
	callbackAction()
}

type Enqueue struct {
	Extra map[string]any
}

type Play struct {
	Extra map[string]any
}

func (*Enqueue) callbackAction() {}
func (*Play) callbackAction()    {}

// CallbackFromName maps the wire names "enqueue" and "play" to their actions.
// Any other name yields no action.
func CallbackFromName(name string, extra map[string]any) CallbackAction {
	switch name {
	case "enqueue":
		return &Enqueue{Extra: extra}
	case "play":
		return &Play{Extra: extra}
	default:
		return nil
	}
}

// From describes where a playback request originated
type From struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
	URI  string `json:"uri,omitempty"`
}

type PlaybackRequest struct {
	URIs  []string       `json:"uris"`
	From  From           `json:"from"`
	Extra map[string]any `json:"extra,omitempty"`
}

type ContextFormatter func(types.Entity) From

func DefaultContextFormatter(e types.Entity) From {
	from := From{
		Type: e.Type(),
		URI:  e.URI(),
	}

	if name, ok := e.Attribute(entities.Name); ok {
		if str, ok := name.(string); ok {
			from.Name = str
		}
	}

	return from
}

func (r *Resolver) dispatchCallback(ctx context.Context, item types.Entity, action CallbackAction) {
	switch a := action.(type) {
	case *Enqueue:
		if a != nil {
			r.dispatch.EnqueueURIs(ctx, r.playbackRequest(item, a.Extra))
		}
	case *Play:
		if a != nil {
			r.dispatch.PlayURIs(ctx, r.playbackRequest(item, a.Extra))
		}
	case nil:
	}
}

func (r *Resolver) playbackRequest(item types.Entity, extra map[string]any) PlaybackRequest {
	req := PlaybackRequest{
		URIs: []string{item.URI()},
		From: r.format(item),
	}

	if len(extra) > 0 {
		req.Extra = make(map[string]any, len(extra))
		for k, v := range extra {
			req.Extra[k] = v
		}
	}

	return req
}
