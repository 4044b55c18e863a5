package core

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MethodGetMe            = "getMe"
	MethodCreateInvoice    = "createInvoice"
	MethodGetBalance       = "getBalance"
	MethodGetExchangeRates = "getExchangeRates"
	MethodGetCurrencies    = "getCurrencies"
	MethodTransfer         = "transfer"
	MethodGetTransfers     = "getTransfers"
	MethodGetInvoices      = "getInvoices"
	MethodDeleteInvoice    = "deleteInvoice"
	MethodCreateCheck      = "createCheck"
	MethodDeleteCheck      = "deleteCheck"
	MethodGetChecks        = "getChecks"
)

// IDList is sent as a comma separated string, which is how the API expects
// identifier filters. Both that form and a JSON array are accepted on read.
type IDList []int64

func (l IDList) MarshalJSON() ([]byte, error) {
	parts := make([]string, 0, len(l))
	for _, id := range l {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return json.Marshal(strings.Join(parts, ","))
}

func (l *IDList) UnmarshalJSON(data []byte) error {
	var ids []int64
	if err := json.Unmarshal(data, &ids); err == nil {
		*l = ids
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("core: id list must be a string or an array: %w", err)
	}
	out := IDList{}
	for _, part := range strings.Split(joined, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fmt.Errorf("core: invalid id %q: %w", part, err)
		}
		out = append(out, id)
	}
	*l = out
	return nil
}

type GetMeRequest struct{}

func (GetMeRequest) MethodName() string { return MethodGetMe }
func (GetMeRequest) HTTPMethod() string { return http.MethodPost }
func (r GetMeRequest) Encode(codec Codec) ([]byte, error) {
	return codec.Encode(r)
}

type CreateInvoiceRequest struct {
	CurrencyType   CurrencyType    `json:"currency_type" validate:"required"`
	Asset          string          `json:"asset,omitempty"`
	Fiat           string          `json:"fiat,omitempty"`
	AcceptedAssets []string        `json:"accepted_assets,omitempty"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	Description    string          `json:"description,omitempty"`
	HiddenMessage  string          `json:"hidden_message,omitempty"`
	PaidButtonName *PaidButtonName `json:"paid_btn_name,omitempty"`
	PaidButtonURL  string          `json:"paid_btn_url,omitempty"`
	Payload        string          `json:"payload,omitempty"`
	AllowComments  *bool           `json:"allow_comments,omitempty"`
	AllowAnonymous *bool           `json:"allow_anonymous,omitempty"`
	ExpiresIn      int             `json:"expires_in,omitempty"`
}

func (CreateInvoiceRequest) MethodName() string { return MethodCreateInvoice }
func (CreateInvoiceRequest) HTTPMethod() string { return http.MethodPost }
func (r CreateInvoiceRequest) Encode(codec Codec) ([]byte, error) {
	return codec.Encode(r)
}

type GetBalanceRequest struct{}

func (GetBalanceRequest) MethodName() string { return MethodGetBalance }
func (GetBalanceRequest) HTTPMethod() string { return http.MethodPost }
func (r GetBalanceRequest) Encode(codec Codec) ([]byte, error) {
	return codec.Encode(r)
}

type GetExchangeRatesRequest struct{}

func (GetExchangeRatesRequest) MethodName() string { return MethodGetExchangeRates }
func (GetExchangeRatesRequest) HTTPMethod() string { return http.MethodPost }
func (r GetExchangeRatesRequest) Encode(codec Codec) ([]byte, error) {
	return codec.Encode(r)
}

type GetCurrenciesRequest struct{}

func (GetCurrenciesRequest) MethodName() string { return MethodGetCurrencies }
func (GetCurrenciesRequest) HTTPMethod() string { return http.MethodPost }
func (r GetCurrenciesRequest) Encode(codec Codec) ([]byte, error) {
	return codec.Encode(r)
}

// TransferRequest sends coins from the app balance to a Telegram user.
// SpendID makes the call idempotent: the API accepts only one transfer per
// spend id.
type TransferRequest struct {
	UserID                  int64           `json:"user_id" validate:"required"`
	Asset                   string          `json:"asset" validate:"required"`
	Amount                  decimal.Decimal `json:"amount" validate:"required"`
	SpendID                 string          `json:"spend_id" validate:"required"`
	Comment                 string          `json:"comment,omitempty"`
	DisableSendNotification *bool           `json:"disable_send_notification,omitempty"`
}

func (TransferRequest) MethodName() string { return MethodTransfer }
func (TransferRequest) HTTPMethod() string { return http.MethodPost }
func (r TransferRequest) Encode(codec Codec) ([]byte, error) {
	return codec.Encode(r)
}

type GetTransfersRequest struct {
	Asset       string `json:"asset,omitempty"`
	TransferIDs IDList `json:"transfer_ids,omitempty"`
	SpendID     string `json:"spend_id,omitempty"`
	Offset      int    `json:"offset"`
	Count       int    `json:"count,omitempty"`
}

func (GetTransfersRequest) MethodName() string { return MethodGetTransfers }
func (GetTransfersRequest) HTTPMethod() string { return http.MethodPost }
func (r GetTransfersRequest) Encode(codec Codec) ([]byte, error) {
	return codec.Encode(r)
}

type GetInvoicesRequest struct {
	Asset      string        `json:"asset,omitempty"`
	Fiat       string        `json:"fiat,omitempty"`
	InvoiceIDs IDList        `json:"invoice_ids,omitempty"`
	Status     InvoiceStatus `json:"status,omitempty"`
	Offset     int           `json:"offset"`
	Count      int           `json:"count,omitempty"`
}

func (GetInvoicesRequest) MethodName() string { return MethodGetInvoices }
func (GetInvoicesRequest) HTTPMethod() string { return http.MethodPost }
func (r GetInvoicesRequest) Encode(codec Codec) ([]byte, error) {
	return codec.Encode(r)
}

type DeleteInvoiceRequest struct {
	InvoiceID int64 `json:"invoice_id" validate:"required"`
}

func (DeleteInvoiceRequest) MethodName() string { return MethodDeleteInvoice }
func (DeleteInvoiceRequest) HTTPMethod() string { return http.MethodPost }
func (r DeleteInvoiceRequest) Encode(codec Codec) ([]byte, error) {
	return codec.Encode(r)
}

type CreateCheckRequest struct {
	Asset         string          `json:"asset" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PinToUserID   *int64          `json:"pin_to_user_id,omitempty"`
	PinToUsername string          `json:"pin_to_username,omitempty"`
}

func (CreateCheckRequest) MethodName() string { return MethodCreateCheck }
func (CreateCheckRequest) HTTPMethod() string { return http.MethodPost }
func (r CreateCheckRequest) Encode(codec Codec) ([]byte, error) {
	return codec.Encode(r)
}

type DeleteCheckRequest struct {
	CheckID int64 `json:"check_id" validate:"required"`
}

func (DeleteCheckRequest) MethodName() string { return MethodDeleteCheck }
func (DeleteCheckRequest) HTTPMethod() string { return http.MethodPost }
func (r DeleteCheckRequest) Encode(codec Codec) ([]byte, error) {
	return codec.Encode(r)
}

type GetChecksRequest struct {
	Asset    string      `json:"asset,omitempty"`
	CheckIDs IDList      `json:"check_ids,omitempty"`
	Status   CheckStatus `json:"status,omitempty"`
	Offset   int         `json:"offset"`
	Count    int         `json:"count,omitempty"`
}

func (GetChecksRequest) MethodName() string { return MethodGetChecks }
func (GetChecksRequest) HTTPMethod() string { return http.MethodPost }
func (r GetChecksRequest) Encode(codec Codec) ([]byte, error) {
	return codec.Encode(r)
}

var (
	_ Request = GetMeRequest{}
	_ Request = CreateInvoiceRequest{}
	_ Request = GetBalanceRequest{}
	_ Request = GetExchangeRatesRequest{}
	_ Request = GetCurrenciesRequest{}
	_ Request = TransferRequest{}
	_ Request = GetTransfersRequest{}
	_ Request = GetInvoicesRequest{}
	_ Request = DeleteInvoiceRequest{}
	_ Request = CreateCheckRequest{}
	_ Request = DeleteCheckRequest{}
	_ Request = GetChecksRequest{}
)
