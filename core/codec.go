package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	goerrors "github.com/goliatone/go-errors"
)

const ContentTypeJSON = "application/json"

// Codec maps typed values to and from the wire representation.
type Codec interface {
	ContentType() string
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// JSONCodec encodes request values as JSON after checking the `validate`
// requiredness tags. Field naming and absent optionals are expressed through
// struct tags on the wire types.
type JSONCodec struct {
	validate *validator.Validate
}

var (
	defaultValidatorOnce sync.Once
	defaultValidator     *validator.Validate
)

func sharedValidator() *validator.Validate {
	defaultValidatorOnce.Do(func() {
		defaultValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return defaultValidator
}

func NewJSONCodec() JSONCodec {
	return JSONCodec{validate: sharedValidator()}
}

func (JSONCodec) ContentType() string {
	return ContentTypeJSON
}

func (c JSONCodec) Encode(v any) ([]byte, error) {
	if v == nil {
		return []byte("{}"), nil
	}
	validate := c.validate
	if validate == nil {
		validate = sharedValidator()
	}
	if err := validate.Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if !errors.As(err, &invalid) {
			return nil, requestValidationError(err)
		}
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("core: encode request: %w", err)
	}
	return encoded, nil
}

// Decode unmarshals data and then checks the `validate` tags of the decoded
// value, so that payloads missing required properties are rejected.
func (c JSONCodec) Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	validate := c.validate
	if validate == nil {
		validate = sharedValidator()
	}
	if err := validate.Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return nil
		}
		return fmt.Errorf("required properties not found in response: %w", err)
	}
	return nil
}

func requestValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "core: request validation failed").
			WithCode(http.StatusBadRequest).
			WithTextCode(ServiceErrorBadInput)
	}
	fields := make([]goerrors.FieldError, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fields = append(fields, goerrors.FieldError{
			Field:   fieldErr.Field(),
			Message: fmt.Sprintf("failed %q constraint", fieldErr.Tag()),
		})
	}
	return goerrors.NewValidation("core: request validation failed", fields...).
		WithCode(http.StatusBadRequest).
		WithTextCode(ServiceErrorBadInput)
}

var _ Codec = JSONCodec{}
