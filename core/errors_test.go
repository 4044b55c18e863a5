package core

import (
	"context"
	"errors"
	"net/http"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestRequestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *RequestError
		want string
	}{
		{
			name: "payload only",
			err:  &RequestError{APIError: &APIError{Code: 400, Name: "AMOUNT_TOO_BIG"}},
			want: "Code: 400 Name: AMOUNT_TOO_BIG",
		},
		{
			name: "message and payload",
			err:  &RequestError{Message: "request rejected", APIError: &APIError{Code: 401, Name: "UNAUTHORIZED"}},
			want: "request rejected\nCode: 401 Name: UNAUTHORIZED",
		},
		{
			name: "message only",
			err:  &RequestError{Message: "response doesn't contain any content"},
			want: "response doesn't contain any content",
		},
		{
			name: "cause only",
			err:  &RequestError{Cause: errors.New("unexpected end of JSON input")},
			want: "unexpected end of JSON input",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRequestError_NameWithoutPayload(t *testing.T) {
	var nilErr *RequestError
	if nilErr.Name() != "" {
		t.Fatalf("expected empty name for nil error")
	}
	if (&RequestError{}).Name() != "" {
		t.Fatalf("expected empty name without payload")
	}
}

func TestMapError_RequestErrorCategories(t *testing.T) {
	tests := []struct {
		status   int
		category goerrors.Category
		textCode string
	}{
		{status: http.StatusBadRequest, category: goerrors.CategoryBadInput, textCode: ServiceErrorBadInput},
		{status: http.StatusUnauthorized, category: goerrors.CategoryAuth, textCode: ServiceErrorUnauthorized},
		{status: http.StatusForbidden, category: goerrors.CategoryAuthz, textCode: ServiceErrorForbidden},
		{status: http.StatusNotFound, category: goerrors.CategoryNotFound, textCode: ServiceErrorMethodNotFound},
		{status: http.StatusMethodNotAllowed, category: goerrors.CategoryNotFound, textCode: ServiceErrorMethodNotFound},
		{status: http.StatusTooManyRequests, category: goerrors.CategoryRateLimit, textCode: ServiceErrorRateLimited},
		{status: http.StatusInternalServerError, category: goerrors.CategoryExternal, textCode: ServiceErrorExternalFailure},
	}
	for _, tt := range tests {
		mapped := MapError(&RequestError{Operation: MethodGetMe, StatusCode: tt.status, APIError: &APIError{Code: tt.status, Name: "X"}})
		if mapped.Category != tt.category || mapped.TextCode != tt.textCode {
			t.Fatalf("status %d: expected %s/%s, got %s/%s", tt.status, tt.category, tt.textCode, mapped.Category, mapped.TextCode)
		}
		if mapped.Code != tt.status {
			t.Fatalf("status %d: expected code to follow status, got %d", tt.status, mapped.Code)
		}
		if mapped.Metadata["operation"] != MethodGetMe {
			t.Fatalf("expected operation metadata, got %#v", mapped.Metadata)
		}
	}
}

func TestMapError_DefaultsAndPassthrough(t *testing.T) {
	if MapError(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}

	mapped := MapError(context.Canceled)
	if mapped.Category != goerrors.CategoryInternal || mapped.TextCode != ServiceErrorInternal {
		t.Fatalf("unexpected cancellation mapping: %#v", mapped)
	}
	if !errors.Is(mapped, context.Canceled) {
		t.Fatalf("expected cancellation to stay in chain")
	}

	existing := goerrors.New("already rich", goerrors.CategoryRateLimit)
	mapped = MapError(existing)
	if mapped != existing {
		t.Fatalf("expected go-errors value to pass through")
	}
	if mapped.Code != http.StatusTooManyRequests || mapped.TextCode != ServiceErrorRateLimited {
		t.Fatalf("expected envelope defaults, got %#v", mapped)
	}

	mapped = MapError(errors.New("boom"))
	if mapped == nil || mapped.Code == 0 || mapped.TextCode == "" {
		t.Fatalf("expected generic error to receive an envelope, got %#v", mapped)
	}
}

func TestTransportError_MatchesSentinels(t *testing.T) {
	timeout := &TransportError{Kind: TransportErrorTimeout, Operation: MethodGetMe}
	if !errors.Is(timeout, ErrRequestTimedOut) || errors.Is(timeout, ErrRequestFailed) {
		t.Fatalf("unexpected timeout matching")
	}
	if timeout.Error() != ErrRequestTimedOut.Error() {
		t.Fatalf("unexpected timeout message %q", timeout.Error())
	}

	failure := &TransportError{Kind: TransportErrorException, Cause: errors.New("eof")}
	if !errors.Is(failure, ErrRequestFailed) || errors.Is(failure, ErrRequestTimedOut) {
		t.Fatalf("unexpected failure matching")
	}
	mapped := failure.ToServiceError()
	if mapped.Code != http.StatusBadGateway || mapped.Category != goerrors.CategoryExternal {
		t.Fatalf("unexpected mapped failure: %#v", mapped)
	}
}

func TestClientMapError_UsesConfiguredMapper(t *testing.T) {
	client := newTestClient(t, respondWith(http.StatusOK, ""))
	err := client.MapError(&RequestError{StatusCode: http.StatusUnauthorized, APIError: &APIError{Code: 401, Name: "UNAUTHORIZED"}})
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) || richErr.TextCode != ServiceErrorUnauthorized {
		t.Fatalf("expected unauthorized envelope, got %v", err)
	}
	if client.MapError(nil) != nil {
		t.Fatalf("expected nil passthrough")
	}
}
