package core

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInvoiceOptions holds the optional createInvoice parameters. Zero values
// fall back to the client defaults; AllowComments and AllowAnonymous default to
// true.
type CreateInvoiceOptions struct {
	CurrencyType   CurrencyType
	Asset          string
	Fiat           string
	AcceptedAssets []string
	Description    string
	HiddenMessage  string
	PaidButtonName *PaidButtonName
	PaidButtonURL  string
	Payload        string
	AllowComments  *bool
	AllowAnonymous *bool
	ExpiresIn      int
}

type TransferOptions struct {
	// SpendID is generated when empty. Pass a stable value to retry safely.
	SpendID                 string
	Comment                 string
	DisableSendNotification *bool
}

type ListInvoicesOptions struct {
	Asset      string
	Fiat       string
	InvoiceIDs []int64
	Status     InvoiceStatus
	Offset     int
	Count      int
}

type ListTransfersOptions struct {
	Asset       string
	TransferIDs []int64
	SpendID     string
	Offset      int
	Count       int
}

type CreateCheckOptions struct {
	PinToUserID   *int64
	PinToUsername string
}

type ListChecksOptions struct {
	Asset    string
	CheckIDs []int64
	Status   CheckStatus
	Offset   int
	Count    int
}

// GetMe checks the token and returns basic information about the app.
func (c *Client) GetMe(ctx context.Context) (Application, error) {
	return Execute[Application](ctx, c, GetMeRequest{})
}

func (c *Client) CreateInvoice(ctx context.Context, amount decimal.Decimal, opts CreateInvoiceOptions) (Invoice, error) {
	req := CreateInvoiceRequest{
		CurrencyType:   opts.CurrencyType,
		Asset:          opts.Asset,
		Fiat:           opts.Fiat,
		AcceptedAssets: opts.AcceptedAssets,
		Amount:         amount,
		Description:    opts.Description,
		HiddenMessage:  opts.HiddenMessage,
		PaidButtonName: opts.PaidButtonName,
		PaidButtonURL:  opts.PaidButtonURL,
		Payload:        opts.Payload,
		AllowComments:  opts.AllowComments,
		AllowAnonymous: opts.AllowAnonymous,
		ExpiresIn:      opts.ExpiresIn,
	}
	if req.CurrencyType == "" {
		req.CurrencyType = c.Config().currencyType()
	}
	if req.ExpiresIn <= 0 {
		req.ExpiresIn = c.Config().expiresIn()
	}
	if req.AllowComments == nil {
		req.AllowComments = boolPtr(true)
	}
	if req.AllowAnonymous == nil {
		req.AllowAnonymous = boolPtr(true)
	}
	return Execute[Invoice](ctx, c, req)
}

func (c *Client) GetBalance(ctx context.Context) ([]Balance, error) {
	return Execute[[]Balance](ctx, c, GetBalanceRequest{})
}

func (c *Client) GetExchangeRates(ctx context.Context) ([]ExchangeRate, error) {
	return Execute[[]ExchangeRate](ctx, c, GetExchangeRatesRequest{})
}

func (c *Client) GetCurrencies(ctx context.Context) ([]Currency, error) {
	return Execute[[]Currency](ctx, c, GetCurrenciesRequest{})
}

// Transfer sends coins from the app balance to a user.
func (c *Client) Transfer(ctx context.Context, userID int64, asset string, amount decimal.Decimal, opts TransferOptions) (Transfer, error) {
	spendID := opts.SpendID
	if spendID == "" {
		spendID = uuid.NewString()
	}
	return Execute[Transfer](ctx, c, TransferRequest{
		UserID:                  userID,
		Asset:                   asset,
		Amount:                  amount,
		SpendID:                 spendID,
		Comment:                 opts.Comment,
		DisableSendNotification: opts.DisableSendNotification,
	})
}

func (c *Client) GetTransfers(ctx context.Context, opts ListTransfersOptions) (Transfers, error) {
	return Execute[Transfers](ctx, c, GetTransfersRequest{
		Asset:       opts.Asset,
		TransferIDs: opts.TransferIDs,
		SpendID:     opts.SpendID,
		Offset:      opts.Offset,
		Count:       c.count(opts.Count),
	})
}

func (c *Client) GetInvoices(ctx context.Context, opts ListInvoicesOptions) (Invoices, error) {
	return Execute[Invoices](ctx, c, GetInvoicesRequest{
		Asset:      opts.Asset,
		Fiat:       opts.Fiat,
		InvoiceIDs: opts.InvoiceIDs,
		Status:     opts.Status,
		Offset:     opts.Offset,
		Count:      c.count(opts.Count),
	})
}

func (c *Client) DeleteInvoice(ctx context.Context, invoiceID int64) (bool, error) {
	return Execute[bool](ctx, c, DeleteInvoiceRequest{InvoiceID: invoiceID})
}

func (c *Client) CreateCheck(ctx context.Context, asset string, amount decimal.Decimal, opts CreateCheckOptions) (Check, error) {
	return Execute[Check](ctx, c, CreateCheckRequest{
		Asset:         asset,
		Amount:        amount,
		PinToUserID:   opts.PinToUserID,
		PinToUsername: opts.PinToUsername,
	})
}

func (c *Client) DeleteCheck(ctx context.Context, checkID int64) (bool, error) {
	return Execute[bool](ctx, c, DeleteCheckRequest{CheckID: checkID})
}

func (c *Client) GetChecks(ctx context.Context, opts ListChecksOptions) (Checks, error) {
	return Execute[Checks](ctx, c, GetChecksRequest{
		Asset:    opts.Asset,
		CheckIDs: opts.CheckIDs,
		Status:   opts.Status,
		Offset:   opts.Offset,
		Count:    c.count(opts.Count),
	})
}

func (c *Client) count(requested int) int {
	if requested > 0 {
		return requested
	}
	return c.Config().pageCount()
}

func boolPtr(value bool) *bool {
	return &value
}
