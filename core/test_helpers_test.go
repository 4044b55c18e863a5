package core

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const testToken = "1234:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw"

type stubTransport struct {
	do func(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

func (stubTransport) Kind() string { return "stub" }

func (s stubTransport) Do(ctx context.Context, req TransportRequest) (TransportResponse, error) {
	return s.do(ctx, req)
}

func respondWith(status int, body string) stubTransport {
	return stubTransport{do: func(context.Context, TransportRequest) (TransportResponse, error) {
		return TransportResponse{StatusCode: status, Body: []byte(body)}, nil
	}}
}

// httpTransport is a minimal net/http transport for tests; the transport
// package cannot be imported here.
type httpTransport struct {
	client *http.Client
}

func (httpTransport) Kind() string { return "http-test" }

func (t httpTransport) Do(ctx context.Context, req TransportRequest) (TransportResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return TransportResponse{}, err
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	res, err := t.client.Do(httpReq)
	if err != nil {
		return TransportResponse{}, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return TransportResponse{}, err
	}
	return TransportResponse{StatusCode: res.StatusCode, Body: body}, nil
}

type recordedRequest struct {
	Path    string
	Method  string
	Token   string
	Content string
	Raw     []byte
	Body    map[string]any
}

type fakeAPI struct {
	mu        sync.Mutex
	requests  []recordedRequest
	status    int
	responses map[string]string
}

func (f *fakeAPI) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		t.Fatalf("expected at least one request")
	}
	return f.requests[len(f.requests)-1]
}

// newFakeAPI serves canned envelopes keyed by operation name.
func newFakeAPI(t *testing.T, responses map[string]string) (*httptest.Server, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{status: http.StatusOK, responses: responses}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body := map[string]any{}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Errorf("decode request body: %v", err)
			}
		}
		api.mu.Lock()
		api.requests = append(api.requests, recordedRequest{
			Path:    r.URL.Path,
			Method:  r.Method,
			Token:   r.Header.Get(HeaderAPIToken),
			Content: r.Header.Get(HeaderContentType),
			Raw:     raw,
			Body:    body,
		})
		status := api.status
		api.mu.Unlock()

		operation := r.URL.Path[len("/api/"):]
		payload, ok := responses[operation]
		if !ok {
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = io.WriteString(w, `{"ok":false,"error":{"code":405,"name":"METHOD_NOT_FOUND"}}`)
			return
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, payload)
	}))
	t.Cleanup(srv.Close)
	return srv, api
}

func newTestClient(t *testing.T, transport TransportAdapter, opts ...Option) *Client {
	t.Helper()
	base := []Option{WithToken(testToken), WithTransport(transport)}
	client, err := NewClient(Config{}, append(base, opts...)...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func newHTTPTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()
	base := []Option{WithAPIURL(srv.URL)}
	return newTestClient(t, httpTransport{client: srv.Client()}, append(base, opts...)...)
}

type metricSample struct {
	name  string
	value float64
	tags  map[string]string
}

type capturingRecorder struct {
	mu         sync.Mutex
	counters   []metricSample
	histograms []metricSample
}

func (r *capturingRecorder) IncCounter(_ context.Context, name string, value int64, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters = append(r.counters, metricSample{name: name, value: float64(value), tags: tags})
}

func (r *capturingRecorder) ObserveHistogram(_ context.Context, name string, value float64, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.histograms = append(r.histograms, metricSample{name: name, value: value, tags: tags})
}

var _ MetricsRecorder = (*capturingRecorder)(nil)
