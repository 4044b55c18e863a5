package core

import (
	"context"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}

// TransportRequest is one API call. Operation names the API method and is
// carried into *TransportError values.
type TransportRequest struct {
	Operation string
	Method    string
	URL       string
	Headers   map[string]string
	Body      []byte
	Timeout   time.Duration
}

type TransportResponse struct {
	StatusCode int
	Body       []byte
}

// TransportAdapter performs exactly one outbound call per Do. Implementations
// must honor ctx cancellation and must not retry. When ctx is done the context
// error should be returned as is; other failures to obtain a response should be
// reported as *TransportError.
type TransportAdapter interface {
	Kind() string
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

// InboundRequest is an out-of-band delivery received from Crypto Pay, such as a
// webhook update.
type InboundRequest struct {
	Headers map[string]string
	Body    []byte
}

// Request is the capability shared by every API call: it names the remote
// operation, the HTTP verb, and knows how to serialize itself.
type Request interface {
	MethodName() string
	HTTPMethod() string
	Encode(codec Codec) ([]byte, error)
}
