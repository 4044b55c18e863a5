package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-cryptopay/core"
	goerrors "github.com/goliatone/go-errors"
)

const KindREST = "rest"

const (
	defaultClientTimeout           = 30 * time.Second
	defaultMaxResponseBytes  int64 = 10 << 20 // 10 MiB
	defaultUserAgent               = "go-cryptopay"
)

var ErrResponseTooLarge = errors.New("transport: response body exceeds limit")

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RESTAdapter sends one Crypto Pay API call per Do over net/http and never
// retries. Caller cancellation comes back as the context error; every other
// failure to read a response is a *core.TransportError.
type RESTAdapter struct {
	Client               HTTPDoer
	UserAgent            string
	MaxResponseBodyBytes int64
}

func NewRESTAdapter(client HTTPDoer) *RESTAdapter {
	if client == nil {
		client = &http.Client{Timeout: defaultClientTimeout}
	}
	return &RESTAdapter{
		Client:               client,
		UserAgent:            defaultUserAgent,
		MaxResponseBodyBytes: defaultMaxResponseBytes,
	}
}

func (*RESTAdapter) Kind() string {
	return KindREST
}

func (a *RESTAdapter) Do(ctx context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if a == nil || a.Client == nil {
		return core.TransportResponse{}, adapterError("transport: rest adapter requires an http client", goerrors.CategoryInternal, nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(req.URL) == "" {
		return core.TransportResponse{}, adapterError("transport: request url is required", goerrors.CategoryBadInput, nil)
	}

	callCtx, cancel := ctx, context.CancelFunc(func() {})
	if req.Timeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, req.Timeout)
	}
	defer cancel()

	httpReq, err := a.newRequest(callCtx, req)
	if err != nil {
		return core.TransportResponse{}, adapterError("transport: build http request", goerrors.CategoryBadInput, err)
	}

	httpRes, err := a.Client.Do(httpReq)
	if err != nil {
		return core.TransportResponse{}, failure(ctx, req.Operation, err)
	}
	defer httpRes.Body.Close()

	body, err := a.readBody(httpRes.Body)
	if err != nil {
		return core.TransportResponse{}, failure(ctx, req.Operation, err)
	}
	return core.TransportResponse{StatusCode: httpRes.StatusCode, Body: body}, nil
}

// newRequest copies caller headers verbatim; the API token must reach the
// server exactly as configured.
func (a *RESTAdapter) newRequest(ctx context.Context, req core.TransportRequest) (*http.Request, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodPost
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, strings.TrimSpace(req.URL), bytes.NewReader(req.Body))
	if err != nil {
		return nil, err
	}
	if a.UserAgent != "" {
		httpReq.Header.Set("User-Agent", a.UserAgent)
	}
	for key, value := range req.Headers {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		httpReq.Header.Set(key, value)
	}
	return httpReq, nil
}

func (a *RESTAdapter) readBody(body io.Reader) ([]byte, error) {
	limit := a.MaxResponseBodyBytes
	if limit <= 0 {
		limit = defaultMaxResponseBytes
	}
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w of %d bytes", ErrResponseTooLarge, limit)
	}
	return data, nil
}

func failure(ctx context.Context, operation string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return core.NewTransportError(operation, err)
}

var _ core.TransportAdapter = (*RESTAdapter)(nil)
