package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

const (
	HeaderAPIToken    = "Crypto-Pay-API-Token"
	HeaderContentType = "Content-Type"
)

var ErrTransportRequired = errors.New("core: transport adapter is required")

// Client executes Crypto Pay API calls. All fields are fixed by NewClient, so a
// Client is safe for concurrent use.
type Client struct {
	config          Config
	apiURL          string
	appID           int64
	transport       TransportAdapter
	codec           Codec
	logger          Logger
	loggerProvider  LoggerProvider
	metricsRecorder MetricsRecorder
	errorMapper     ErrorMapper
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	builder := defaultClientBuilder(cfg)
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve("cryptopay", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("cryptopay"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.metricsRecorder == nil {
		builder.metricsRecorder = NopMetricsRecorder{}
	}
	if builder.errorMapper == nil {
		builder.errorMapper = MapError
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}
	if builder.codec == nil {
		builder.codec = NewJSONCodec()
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}

	appID, err := parseAppID(finalConfig.Token)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, configError(err, err.Error()))
	}
	if builder.transport == nil {
		return nil, mapBuildError(builder.errorMapper, dependencyError(ErrTransportRequired))
	}

	return &Client{
		config:          finalConfig,
		apiURL:          normalizeAPIURL(finalConfig.APIURL),
		appID:           appID,
		transport:       builder.transport,
		codec:           builder.codec,
		logger:          logger,
		loggerProvider:  provider,
		metricsRecorder: builder.metricsRecorder,
		errorMapper:     builder.errorMapper,
	}, nil
}

// parseAppID reads the application id from the token prefix, e.g. "7331" in
// "7331:AAQ...".
func parseAppID(token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, ErrTokenRequired
	}
	prefix, _, found := strings.Cut(token, ":")
	if !found {
		return 0, ErrInvalidToken
	}
	appID, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return appID, nil
}

func (c *Client) AppID() int64 {
	if c == nil {
		return 0
	}
	return c.appID
}

func (c *Client) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.config
}

func (c *Client) APIURL() string {
	if c == nil {
		return ""
	}
	return c.apiURL
}

func (c *Client) Logger() Logger {
	if c == nil || c.logger == nil {
		return glog.Nop()
	}
	return c.logger
}

func (c *Client) LoggerProvider() LoggerProvider {
	if c == nil {
		return nil
	}
	return c.loggerProvider
}

// MapError runs err through the configured error mapper.
func (c *Client) MapError(err error) error {
	if c == nil || c.errorMapper == nil {
		return err
	}
	return mapBuildError(c.errorMapper, err)
}

// Execute performs one API call and decodes its result into T. It never
// retries. When ctx is done the context error is returned unchanged.
func Execute[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var zero T
	if c == nil || c.transport == nil {
		return zero, dependencyError(ErrTransportRequired)
	}
	if req == nil {
		return zero, badInputError("core: request is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	startedAt := time.Now()
	operation := req.MethodName()
	result, statusCode, err := execute[T](ctx, c, req)
	c.observeOperation(ctx, startedAt, operation, err, map[string]any{
		"operation":   operation,
		"status_code": statusCode,
	})
	return result, err
}

func execute[T any](ctx context.Context, c *Client, req Request) (T, int, error) {
	var zero T
	operation := req.MethodName()

	body, err := req.Encode(c.codec)
	if err != nil {
		return zero, 0, err
	}

	response, err := c.transport.Do(ctx, TransportRequest{
		Operation: operation,
		Method:    req.HTTPMethod(),
		URL:       c.apiURL + "api/" + operation,
		Headers: map[string]string{
			HeaderAPIToken:    c.config.Token,
			HeaderContentType: c.codec.ContentType(),
		},
		Body:    body,
		Timeout: c.config.Timeout,
	})
	if err != nil {
		return zero, 0, classifyTransportError(ctx, operation, err)
	}

	result, err := decodeResponse[T](c.codec, operation, response)
	return result, response.StatusCode, err
}

// classifyTransportError keeps the caller's context error and errors the
// adapter already classified; anything else from a foreign adapter is sorted
// into timeout or exception here.
func classifyTransportError(ctx context.Context, operation string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		if transportErr.Operation == "" {
			transportErr.Operation = operation
		}
		return transportErr
	}
	return NewTransportError(operation, err)
}

func decodeResponse[T any](codec Codec, operation string, response TransportResponse) (T, error) {
	var zero T
	status := response.StatusCode
	body := bytes.TrimSpace(response.Body)

	if status != http.StatusOK && len(body) > 0 {
		var failed Envelope[json.RawMessage]
		if err := codec.Decode(body, &failed); err == nil && !failed.OK && failed.Error != nil {
			return zero, &RequestError{
				Operation:  operation,
				StatusCode: status,
				APIError:   failed.Error,
			}
		}
	}

	if len(body) == 0 {
		return zero, &RequestError{
			Operation:  operation,
			StatusCode: status,
			Message:    "response doesn't contain any content",
		}
	}

	var envelope Envelope[T]
	if err := codec.Decode(body, &envelope); err != nil {
		return zero, &RequestError{
			Operation:  operation,
			StatusCode: status,
			Message:    err.Error(),
			Cause:      err,
		}
	}
	if envelope.failed() {
		requestErr := &RequestError{
			Operation:  operation,
			StatusCode: status,
			APIError:   envelope.Error,
		}
		if envelope.Error == nil {
			requestErr.Message = "required properties not found in response"
		}
		return zero, requestErr
	}
	return *envelope.Result, nil
}
