package webhooks

import (
	"context"
	"net/http"
	"strings"

	"github.com/goliatone/go-cryptopay/core"
	goerrors "github.com/goliatone/go-errors"
)

const HeaderSignature = "crypto-pay-api-signature"

const (
	ServiceErrorSignatureMissing = "CRYPTOPAY_SIGNATURE_MISSING"
	ServiceErrorSignatureInvalid = "CRYPTOPAY_SIGNATURE_INVALID"
)

// Verifier checks inbound deliveries against the app token.
type Verifier struct {
	Token  string
	Header string
}

func NewVerifier(token string) Verifier {
	return Verifier{Token: token, Header: HeaderSignature}
}

func (v Verifier) Verify(_ context.Context, req core.InboundRequest) error {
	if strings.TrimSpace(v.Token) == "" {
		return goerrors.New("webhooks: verification token is required", goerrors.CategoryInternal).
			WithCode(http.StatusInternalServerError).
			WithTextCode(core.ServiceErrorInternal)
	}
	header := strings.TrimSpace(v.Header)
	if header == "" {
		header = HeaderSignature
	}
	signature := strings.TrimSpace(headerValue(req.Headers, header))
	if signature == "" {
		return goerrors.New("webhooks: "+header+" header is required", goerrors.CategoryAuth).
			WithCode(http.StatusUnauthorized).
			WithTextCode(ServiceErrorSignatureMissing)
	}
	if !CheckSignature(signature, v.Token, req.Body) {
		return goerrors.New("webhooks: signature verification failed", goerrors.CategoryAuth).
			WithCode(http.StatusUnauthorized).
			WithTextCode(ServiceErrorSignatureInvalid)
	}
	return nil
}

// ParseUpdate verifies req and decodes its body. Nothing is decoded when the
// signature does not match.
func ParseUpdate(ctx context.Context, verifier Verifier, req core.InboundRequest) (core.Update, error) {
	if err := verifier.Verify(ctx, req); err != nil {
		return core.Update{}, err
	}
	var update core.Update
	if err := core.NewJSONCodec().Decode(req.Body, &update); err != nil {
		return core.Update{}, goerrors.Wrap(err, goerrors.CategoryBadInput, "webhooks: decode update").
			WithCode(http.StatusBadRequest).
			WithTextCode(core.ServiceErrorBadInput)
	}
	return update, nil
}
