package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/diwise/library-resolver/pkg/library/entities"
	"github.com/diwise/library-resolver/pkg/library/errors"
	"github.com/diwise/library-resolver/pkg/library/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type SourceClient interface {
	RetrieveItem(ctx context.Context, uri string) (types.Entity, error)
}

type Option func(*sourceClient)

func Debug(enabled string) Option {
	return func(c *sourceClient) {
		c.debug = (enabled == "true")
	}
}

// Header adds a header that is sent with every request to the library source
func Header(key, value string) Option {
	return func(c *sourceClient) {
		c.headers.Add(key, value)
	}
}

func NewSourceClient(baseURL string, options ...Option) SourceClient {
	c := &sourceClient{
		baseURL: baseURL,
		headers: http.Header{},
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const TraceAttributeItemURI string = "item-uri"

var tracer = otel.Tracer("library-source-client")

type sourceClient struct {
	baseURL    string
	headers    http.Header
	debug      bool
	httpClient http.Client
}

func (c *sourceClient) RetrieveItem(ctx context.Context, uri string) (types.Entity, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-item",
		trace.WithAttributes(attribute.String(TraceAttributeItemURI, uri)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response, responseBody, err := c.callLibrarySource(
		ctx, http.MethodGet, c.baseURL+"/api/v1/items/"+url.QueryEscape(uri), nil,
	)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		contentType := response.Header.Get("Content-Type")
		if response.StatusCode >= http.StatusBadRequest && response.StatusCode <= http.StatusInternalServerError {
			err = errors.NewErrorFromProblemReport(response.StatusCode, contentType, responseBody)
			return nil, err
		}

		err = fmt.Errorf("unexpected response code %d (%w)", response.StatusCode, errors.ErrInternal)
		return nil, err
	}

	var item types.Entity
	item, err = entities.NewFromJSON(responseBody)
	if err != nil {
		err = fmt.Errorf("%s (%w)", err.Error(), errors.ErrBadResponse)
		return nil, err
	}

	return item, nil
}

func (c *sourceClient) callLibrarySource(ctx context.Context, method, endpoint string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	req.Header.Set("Accept", "application/json")
	for header, values := range c.headers {
		for _, val := range values {
			req.Header.Add(header, val)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrRequest)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusNotFound {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		logging.GetFromContext(ctx).Error("request failed", "request", string(reqbytes), "response", string(respbytes))
	}

	return resp, respBody, nil
}
