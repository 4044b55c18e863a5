package query

import "github.com/goliatone/go-cryptopay/core"

const (
	TypeGetMe            = "cryptopay.query.me"
	TypeGetBalance       = "cryptopay.query.balance"
	TypeGetExchangeRates = "cryptopay.query.exchange_rates"
	TypeGetCurrencies    = "cryptopay.query.currencies"
	TypeGetInvoices      = "cryptopay.query.invoices.list"
	TypeGetTransfers     = "cryptopay.query.transfers.list"
	TypeGetChecks        = "cryptopay.query.checks.list"
)

type GetMeMessage struct{}

func (GetMeMessage) Type() string { return TypeGetMe }

func (GetMeMessage) Validate() error { return nil }

type GetBalanceMessage struct{}

func (GetBalanceMessage) Type() string { return TypeGetBalance }

func (GetBalanceMessage) Validate() error { return nil }

type GetExchangeRatesMessage struct{}

func (GetExchangeRatesMessage) Type() string { return TypeGetExchangeRates }

func (GetExchangeRatesMessage) Validate() error { return nil }

type GetCurrenciesMessage struct{}

func (GetCurrenciesMessage) Type() string { return TypeGetCurrencies }

func (GetCurrenciesMessage) Validate() error { return nil }

type GetInvoicesMessage struct {
	Filter core.ListInvoicesOptions
}

func (GetInvoicesMessage) Type() string { return TypeGetInvoices }

func (m GetInvoicesMessage) Validate() error {
	switch m.Filter.Status {
	case "", core.InvoiceStatusActive, core.InvoiceStatusPaid, core.InvoiceStatusExpired:
	default:
		return queryValidationError("status", "must be active, paid or expired")
	}
	return validatePage(m.Filter.Offset, m.Filter.Count)
}

type GetTransfersMessage struct {
	Filter core.ListTransfersOptions
}

func (GetTransfersMessage) Type() string { return TypeGetTransfers }

func (m GetTransfersMessage) Validate() error {
	return validatePage(m.Filter.Offset, m.Filter.Count)
}

type GetChecksMessage struct {
	Filter core.ListChecksOptions
}

func (GetChecksMessage) Type() string { return TypeGetChecks }

func (m GetChecksMessage) Validate() error {
	switch m.Filter.Status {
	case "", core.CheckStatusActive, core.CheckStatusActivated:
	default:
		return queryValidationError("status", "must be active or activated")
	}
	return validatePage(m.Filter.Offset, m.Filter.Count)
}

// validatePage treats a zero count as "use the client default".
func validatePage(offset int, count int) error {
	if offset < 0 {
		return queryValidationError("offset", "must not be negative")
	}
	if count < 0 || count > core.MaxPageCount {
		return queryValidationError("count", "must be between 1 and 1000")
	}
	return nil
}
