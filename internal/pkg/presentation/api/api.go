package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/diwise/library-resolver/internal/pkg/application/library"
	"github.com/diwise/library-resolver/internal/pkg/application/playqueue"
	"github.com/diwise/library-resolver/internal/pkg/application/resolver"
	"github.com/diwise/library-resolver/internal/pkg/presentation/api/auth"
	"github.com/diwise/library-resolver/pkg/library/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out librarymanager_mock.go . LibraryManager

type LibraryManager interface {
	Resolve(ctx context.Context, req library.ResolveRequest) (*resolver.Pending, error)
	Item(container, uri string) (types.Entity, bool)
	Items(container string) []types.Entity
	Loading(uri string) bool
	Queue() []playqueue.Entry
}

var tracer = otel.Tracer("library-resolver/api")

func RegisterHandlers(ctx context.Context, mux *http.ServeMux, middleware []func(http.Handler) http.Handler, policies io.Reader, app LibraryManager) error {
	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authenticator: %w", err)
	}

	middleware = append(middleware,
		Logger(logging.GetFromContext(ctx)),
	)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware...)

		r.With(RequiredContentTypes([]string{"application/json"})).
			Post("/resolve", NewResolveHandler(app, authenticator))

		r.Get("/containers/{container}/items", NewListItemsHandler(app, authenticator))
		r.Get("/containers/{container}/items/{uri}", NewRetrieveItemHandler(app, authenticator))

		r.Get("/loading/{uri}", NewLoadingStatusHandler(app, authenticator))
		r.Get("/queue", NewRetrieveQueueHandler(app, authenticator))
	})

	mux.Handle("/api/v1/", r)

	return nil
}

// Logger stores a logger tagged with the current trace id in the request context
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequiredContentTypes(validTypes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")
			isValidContentType := true

			if len(contentType) > 0 {
				isValidContentType = false

				for _, t := range validTypes {
					if strings.HasPrefix(contentType, t) {
						isValidContentType = true
						break
					}
				}
			}

			if isValidContentType {
				next.ServeHTTP(w, r)
			} else {
				http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
			}
		})
	}
}

func addLabelIfError(err error, labeler *otelhttp.Labeler) {
	if err != nil && labeler != nil {
		labeler.Add(attribute.Bool("error", true))
	}
}
