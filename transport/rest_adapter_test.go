package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-cryptopay/core"
	goerrors "github.com/goliatone/go-errors"
)

func TestRESTAdapter_SendsHeadersAndBody(t *testing.T) {
	var gotMethod, gotToken, gotContentType, gotAgent, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotToken = r.Header.Get("Crypto-Pay-API-Token")
		gotContentType = r.Header.Get("Content-Type")
		gotAgent = r.Header.Get("User-Agent")
		payload, _ := io.ReadAll(r.Body)
		gotBody = string(payload)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
	}))
	defer server.Close()

	adapter := NewRESTAdapter(server.Client())
	res, err := adapter.Do(context.Background(), core.TransportRequest{
		Method: http.MethodPost,
		URL:    server.URL + "/api/deleteCheck",
		Headers: map[string]string{
			"Crypto-Pay-API-Token": "1234:secret",
			"Content-Type":         "application/json",
		},
		Body: []byte(`{"check_id":7}`),
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if string(res.Body) != `{"ok":true,"result":true}` {
		t.Fatalf("unexpected body %q", string(res.Body))
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %q", gotMethod)
	}
	if gotToken != "1234:secret" {
		t.Fatalf("expected token header, got %q", gotToken)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected json content type, got %q", gotContentType)
	}
	if gotAgent != defaultUserAgent {
		t.Fatalf("expected default user agent, got %q", gotAgent)
	}
	if gotBody != `{"check_id":7}` {
		t.Fatalf("unexpected request body %q", gotBody)
	}
}

func TestRESTAdapter_NonOKStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":false,"error":{"code":401,"name":"UNAUTHORIZED"}}`))
	}))
	defer server.Close()

	res, err := NewRESTAdapter(server.Client()).Do(context.Background(), core.TransportRequest{URL: server.URL})
	if err != nil {
		t.Fatalf("expected response for non-200 status, got %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}

func TestRESTAdapter_ResponseLimitIsRequestFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("12345"))
	}))
	defer server.Close()

	adapter := NewRESTAdapter(server.Client())
	adapter.MaxResponseBodyBytes = 4

	_, err := adapter.Do(context.Background(), core.TransportRequest{
		Operation: "getMe",
		Method:    http.MethodPost,
		URL:       server.URL,
	})
	if err == nil {
		t.Fatalf("expected response body limit error")
	}

	var transportErr *core.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected transport error, got %T: %v", err, err)
	}
	if transportErr.Kind != core.TransportErrorException {
		t.Fatalf("expected exception kind, got %q", transportErr.Kind)
	}
	if transportErr.Operation != "getMe" {
		t.Fatalf("expected operation getMe, got %q", transportErr.Operation)
	}
	if !errors.Is(err, core.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
	if !errors.Is(err, ErrResponseTooLarge) {
		t.Fatalf("expected ErrResponseTooLarge in chain, got %v", err)
	}
}

func TestRESTAdapter_TimeoutIsClassifiedAndKeepsNetErrorCause(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	_, err := NewRESTAdapter(server.Client()).Do(context.Background(), core.TransportRequest{
		Operation: "getBalance",
		URL:       server.URL,
		Timeout:   20 * time.Millisecond,
	})
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	var transportErr *core.TransportError
	if !errors.As(err, &transportErr) || transportErr.Kind != core.TransportErrorTimeout {
		t.Fatalf("expected timeout transport error, got %T: %v", err, err)
	}
	if !errors.Is(err, core.ErrRequestTimedOut) {
		t.Fatalf("expected ErrRequestTimedOut, got %v", err)
	}
	var netErr net.Error
	if !errors.As(err, &netErr) || !netErr.Timeout() {
		t.Fatalf("expected net timeout in chain, got %v", err)
	}
}

func TestRESTAdapter_CallerCancellationReturnsContextError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	doer := doerFunc(func(req *http.Request) (*http.Response, error) {
		cancel()
		<-req.Context().Done()
		return nil, req.Context().Err()
	})

	_, err := NewRESTAdapter(doer).Do(ctx, core.TransportRequest{URL: "https://pay.crypt.bot/api/getMe"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var transportErr *core.TransportError
	if errors.As(err, &transportErr) {
		t.Fatalf("caller cancellation must not be wrapped, got %v", err)
	}
}

func TestRESTAdapter_SendsHeaderValuesUnmodified(t *testing.T) {
	var got http.Header
	doer := doerFunc(func(req *http.Request) (*http.Response, error) {
		got = req.Header.Clone()
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"ok":true,"result":true}`)),
		}, nil
	})

	_, err := NewRESTAdapter(doer).Do(context.Background(), core.TransportRequest{
		URL: "https://pay.crypt.bot/api/getMe",
		Headers: map[string]string{
			" Crypto-Pay-API-Token ": " 1234:secret ",
			"":                       "ignored",
		},
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	values := got.Values("Crypto-Pay-API-Token")
	if len(values) != 1 || values[0] != " 1234:secret " {
		t.Fatalf("expected token value unchanged, got %#v", values)
	}
	if len(got.Values("")) != 0 {
		t.Fatalf("expected blank header key to be skipped, got %#v", got)
	}
}

type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestRESTAdapter_NilReturnsRichError(t *testing.T) {
	var adapter *RESTAdapter
	_, err := adapter.Do(context.Background(), core.TransportRequest{})
	if err == nil {
		t.Fatalf("expected rest adapter nil error")
	}

	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Category != goerrors.CategoryInternal {
		t.Fatalf("expected internal category, got %q", rich.Category)
	}
	if rich.TextCode != core.ServiceErrorInternal {
		t.Fatalf("expected %q text code, got %q", core.ServiceErrorInternal, rich.TextCode)
	}
	if rich.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d code, got %d", http.StatusInternalServerError, rich.Code)
	}
}

func TestRESTAdapter_MissingURLIsBadInput(t *testing.T) {
	_, err := NewRESTAdapter(nil).Do(context.Background(), core.TransportRequest{})
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Category != goerrors.CategoryBadInput {
		t.Fatalf("expected bad input category, got %q", rich.Category)
	}
}
