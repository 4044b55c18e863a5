package transport

import (
	"net/http"

	"github.com/goliatone/go-cryptopay/core"
	goerrors "github.com/goliatone/go-errors"
)

// adapterError reports a misconfigured adapter or request, i.e. a failure that
// happened before anything was sent.
func adapterError(message string, category goerrors.Category, source error) error {
	code, textCode := http.StatusInternalServerError, core.ServiceErrorInternal
	if category == goerrors.CategoryBadInput {
		code, textCode = http.StatusBadRequest, core.ServiceErrorBadInput
	}
	err := goerrors.New(message, category)
	if source != nil {
		err = goerrors.Wrap(source, category, message)
	}
	return err.
		WithCode(code).
		WithTextCode(textCode).
		WithMetadata(map[string]any{"adapter": KindREST})
}
