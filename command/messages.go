package command

import (
	"strings"

	"github.com/goliatone/go-cryptopay/core"
	"github.com/shopspring/decimal"
)

const (
	TypeCreateInvoice = "cryptopay.command.invoice.create"
	TypeDeleteInvoice = "cryptopay.command.invoice.delete"
	TypeTransfer      = "cryptopay.command.transfer"
	TypeCreateCheck   = "cryptopay.command.check.create"
	TypeDeleteCheck   = "cryptopay.command.check.delete"
)

// maxSpendIDLength is the longest spend_id the API accepts.
const maxSpendIDLength = 64

type CreateInvoiceMessage struct {
	Amount  decimal.Decimal
	Options core.CreateInvoiceOptions
}

func (CreateInvoiceMessage) Type() string { return TypeCreateInvoice }

func (m CreateInvoiceMessage) Validate() error {
	if !m.Amount.IsPositive() {
		return commandValidationError("amount", "must be greater than zero")
	}
	switch m.Options.CurrencyType {
	case core.CurrencyTypeFiat:
		if strings.TrimSpace(m.Options.Fiat) == "" {
			return commandValidationError("fiat", "is required for fiat invoices")
		}
	case core.CurrencyTypeCrypto:
		if strings.TrimSpace(m.Options.Asset) == "" {
			return commandValidationError("asset", "is required for crypto invoices")
		}
	case "":
		if strings.TrimSpace(m.Options.Asset) == "" && strings.TrimSpace(m.Options.Fiat) == "" {
			return commandValidationError("asset", "asset or fiat is required")
		}
	default:
		return commandValidationError("currency_type", "must be crypto or fiat")
	}
	if m.Options.ExpiresIn < 0 || m.Options.ExpiresIn > core.DefaultInvoiceExpiresIn {
		return commandValidationError("expires_in", "is out of range")
	}
	return nil
}

type DeleteInvoiceMessage struct {
	InvoiceID int64
}

func (DeleteInvoiceMessage) Type() string { return TypeDeleteInvoice }

func (m DeleteInvoiceMessage) Validate() error {
	if m.InvoiceID <= 0 {
		return commandValidationError("invoice_id", "is required")
	}
	return nil
}

type TransferMessage struct {
	UserID  int64
	Asset   string
	Amount  decimal.Decimal
	Options core.TransferOptions
}

func (TransferMessage) Type() string { return TypeTransfer }

func (m TransferMessage) Validate() error {
	if m.UserID <= 0 {
		return commandValidationError("user_id", "is required")
	}
	if strings.TrimSpace(m.Asset) == "" {
		return commandValidationError("asset", "is required")
	}
	if !m.Amount.IsPositive() {
		return commandValidationError("amount", "must be greater than zero")
	}
	if len(m.Options.SpendID) > maxSpendIDLength {
		return commandValidationError("spend_id", "must be at most 64 characters")
	}
	return nil
}

type CreateCheckMessage struct {
	Asset   string
	Amount  decimal.Decimal
	Options core.CreateCheckOptions
}

func (CreateCheckMessage) Type() string { return TypeCreateCheck }

func (m CreateCheckMessage) Validate() error {
	if strings.TrimSpace(m.Asset) == "" {
		return commandValidationError("asset", "is required")
	}
	if !m.Amount.IsPositive() {
		return commandValidationError("amount", "must be greater than zero")
	}
	return nil
}

type DeleteCheckMessage struct {
	CheckID int64
}

func (DeleteCheckMessage) Type() string { return TypeDeleteCheck }

func (m DeleteCheckMessage) Validate() error {
	if m.CheckID <= 0 {
		return commandValidationError("check_id", "is required")
	}
	return nil
}
