package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/diwise/library-resolver/internal/pkg/application/library"
	"github.com/diwise/library-resolver/internal/pkg/application/playqueue"
	"github.com/diwise/library-resolver/internal/pkg/application/resolver"
	"github.com/diwise/library-resolver/internal/pkg/presentation/api/auth"
	liberrors "github.com/diwise/library-resolver/pkg/library/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const messageToSendToNonAuthenticatedClients string = "not found"

type resolveRequestBody struct {
	URI          string         `json:"uri"`
	Type         string         `json:"type"`
	ForceRefetch bool           `json:"forceRefetch"`
	Full         bool           `json:"full"`
	Callback     map[string]any `json:"callback,omitempty"`
}

// callback splits {"name": "play", ...extra} into an action and its extra values
func (b resolveRequestBody) callback() resolver.CallbackAction {
	if len(b.Callback) == 0 {
		return nil
	}

	name, _ := b.Callback["name"].(string)

	extra := map[string]any{}
	for k, v := range b.Callback {
		if k != "name" {
			extra[k] = v
		}
	}

	return resolver.CallbackFromName(name, extra)
}

type resolveResponseBody struct {
	URI     string `json:"uri"`
	Outcome string `json:"outcome"`
}

// NewResolveHandler handles POST requests asking for an item and its
// dependents to be loaded. The request is accepted right away unless the
// caller asks to wait for the outcome.
func NewResolveHandler(app LibraryManager, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "resolve-item")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		log := logging.GetFromContext(ctx)

		body := resolveRequestBody{}
		err = json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			liberrors.ReportBadRequest(w, "unable to decode request payload: "+err.Error())
			return
		}

		err = authenticator.CheckAccess(ctx, r, []string{body.Type})
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			liberrors.ReportNotFound(w, messageToSendToNonAuthenticatedClients)
			return
		}

		ctx = logging.NewContextWithLogger(ctx, log, "type", body.Type)

		pending, err := app.Resolve(ctx, library.ResolveRequest{
			URI:          body.URI,
			Type:         body.Type,
			ForceRefetch: body.ForceRefetch,
			Full:         body.Full,
			Callback:     body.callback(),
		})
		if err != nil {
			if errors.Is(err, liberrors.ErrBadRequest) {
				liberrors.ReportBadRequest(w, err.Error())
			} else {
				log.Error("failed to resolve item", "err", err.Error())
				liberrors.ReportInternalError(w, "failed to resolve item")
			}
			return
		}

		if r.URL.Query().Get("wait") != "true" {
			w.WriteHeader(http.StatusAccepted)
			return
		}

		result, err := pending.Wait(ctx)
		if err != nil {
			log.Warn("gave up waiting for resolution", "err", err.Error())
			liberrors.ReportInternalError(w, "resolution did not complete")
			return
		}

		response, _ := json.Marshal(resolveResponseBody{URI: body.URI, Outcome: result.Outcome.String()})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	})
}

// NewRetrieveItemHandler serves an item from a container in the index
func NewRetrieveItemHandler(app LibraryManager, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		log := logging.GetFromContext(ctx)

		err = authenticator.CheckAccess(ctx, r, []string{})
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			liberrors.ReportNotFound(w, messageToSendToNonAuthenticatedClients)
			return
		}

		container := r.PathValue("container")
		uri, _ := url.PathUnescape(r.PathValue("uri"))

		item, ok := app.Item(container, uri)
		if !ok {
			liberrors.ReportNotFound(w, "no item "+uri+" in container "+container)
			return
		}

		body, err := item.MarshalJSON()
		if err != nil {
			log.Error("failed to marshal item", "err", err.Error())
			liberrors.ReportInternalError(w, "failed to marshal item")
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}

// NewListItemsHandler serves every item in a container, ordered by uri
func NewListItemsHandler(app LibraryManager, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logging.GetFromContext(ctx)

		err := authenticator.CheckAccess(ctx, r, []string{})
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			liberrors.ReportNotFound(w, messageToSendToNonAuthenticatedClients)
			return
		}

		items := app.Items(r.PathValue("container"))

		body, err := json.Marshal(items)
		if err != nil {
			log.Error("failed to marshal items", "err", err.Error())
			liberrors.ReportInternalError(w, "failed to marshal items")
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}

type loadingResponseBody struct {
	URI     string `json:"uri"`
	Loading bool   `json:"loading"`
}

func NewLoadingStatusHandler(app LibraryManager, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		err := authenticator.CheckAccess(ctx, r, []string{})
		if err != nil {
			logging.GetFromContext(ctx).Warn("access not granted", "err", err.Error())
			liberrors.ReportNotFound(w, messageToSendToNonAuthenticatedClients)
			return
		}

		uri, _ := url.PathUnescape(r.PathValue("uri"))
		body, _ := json.Marshal(loadingResponseBody{URI: uri, Loading: app.Loading(uri)})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}

func NewRetrieveQueueHandler(app LibraryManager, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		err := authenticator.CheckAccess(ctx, r, []string{})
		if err != nil {
			logging.GetFromContext(ctx).Warn("access not granted", "err", err.Error())
			liberrors.ReportNotFound(w, messageToSendToNonAuthenticatedClients)
			return
		}

		entries := app.Queue()
		if entries == nil {
			entries = []playqueue.Entry{}
		}

		body, err := json.Marshal(entries)
		if err != nil {
			liberrors.ReportInternalError(w, "failed to marshal queue")
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}
