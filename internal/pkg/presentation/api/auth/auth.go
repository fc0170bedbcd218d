package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/open-policy-agent/opa/rego"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("library-resolver/api/authz")

// PolicyQuery is evaluated against every request. A policy grants access by
// binding library.authz.allow to an object and denies it with a false.
const PolicyQuery string = "grant = data.library.authz.allow"

var ErrAccessDenied = errors.New("library access denied")

// Enticator decides whether a request may touch items of the given types
type Enticator interface {
	CheckAccess(ctx context.Context, r *http.Request, itemTypes []string) error
}

type libraryPolicy struct {
	query rego.PreparedEvalQuery
}

// NewAuthenticator compiles a rego module with a library.authz package
func NewAuthenticator(ctx context.Context, policies io.Reader) (Enticator, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("failed to read library access policies: %w", err)
	}

	query, err := rego.New(
		rego.Query(PolicyQuery),
		rego.Module("library.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile library access policies: %w", err)
	}

	return &libraryPolicy{query: query}, nil
}

func (p *libraryPolicy) CheckAccess(ctx context.Context, r *http.Request, itemTypes []string) error {
	var err error

	ctx, span := tracer.Start(ctx, "check-library-access")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	token, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")

	if itemTypes == nil {
		itemTypes = []string{}
	}

	input := map[string]any{
		"method":     r.Method,
		"path":       strings.Split(strings.Trim(r.URL.Path, "/"), "/"),
		"token":      token,
		"item_types": itemTypes,
		"container":  r.PathValue("container"),
	}

	results, err := p.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		err = fmt.Errorf("failed to evaluate library access policies: %w", err)
		return err
	}

	err = grantFrom(results)
	return err
}

func grantFrom(results rego.ResultSet) error {
	if len(results) == 0 {
		return fmt.Errorf("%w: no policy decision", ErrAccessDenied)
	}

	switch grant := results[0].Bindings["grant"].(type) {
	case bool:
		if !grant {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: policy granted a bare true", ErrAccessDenied)
	case map[string]any:
		return nil
	default:
		return fmt.Errorf("unexpected policy decision of type %T", grant)
	}
}
