package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type CurrencyType string

const (
	CurrencyTypeCrypto CurrencyType = "crypto"
	CurrencyTypeFiat   CurrencyType = "fiat"
)

type InvoiceStatus string

const (
	InvoiceStatusActive  InvoiceStatus = "active"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusExpired InvoiceStatus = "expired"
)

type CheckStatus string

const (
	CheckStatusActive    CheckStatus = "active"
	CheckStatusActivated CheckStatus = "activated"
)

type TransferStatus string

const TransferStatusCompleted TransferStatus = "completed"

type PaidButtonName string

const (
	PaidButtonViewItem    PaidButtonName = "viewItem"
	PaidButtonOpenChannel PaidButtonName = "openChannel"
	PaidButtonOpenBot     PaidButtonName = "openBot"
	PaidButtonCallback    PaidButtonName = "callback"
)

type UpdateType string

const UpdateTypeInvoicePaid UpdateType = "invoice_paid"

// Application is returned by getMe.
type Application struct {
	AppID                        int64  `json:"app_id"`
	Name                         string `json:"name"`
	PaymentProcessingBotUsername string `json:"payment_processing_bot_username"`
}

type Invoice struct {
	InvoiceID         int64            `json:"invoice_id" validate:"required"`
	Hash              string           `json:"hash" validate:"required"`
	CurrencyType      CurrencyType     `json:"currency_type"`
	Asset             string           `json:"asset,omitempty"`
	Fiat              string           `json:"fiat,omitempty"`
	Amount            decimal.Decimal  `json:"amount"`
	PaidAsset         string           `json:"paid_asset,omitempty"`
	PaidAmount        *decimal.Decimal `json:"paid_amount,omitempty"`
	PaidFiatRate      *decimal.Decimal `json:"paid_fiat_rate,omitempty"`
	AcceptedAssets    []string         `json:"accepted_assets,omitempty"`
	FeeAsset          string           `json:"fee_asset,omitempty"`
	FeeAmount         *decimal.Decimal `json:"fee_amount,omitempty"`
	FeeInUSD          *decimal.Decimal `json:"fee_in_usd,omitempty"`
	PayURL            string           `json:"pay_url,omitempty"`
	BotInvoiceURL     string           `json:"bot_invoice_url"`
	MiniAppInvoiceURL string           `json:"mini_app_invoice_url,omitempty"`
	WebAppInvoiceURL  string           `json:"web_app_invoice_url,omitempty"`
	Description       string           `json:"description,omitempty"`
	Status            InvoiceStatus    `json:"status" validate:"required"`
	CreatedAt         time.Time        `json:"created_at" validate:"required"`
	PaidUSDRate       *decimal.Decimal `json:"paid_usd_rate,omitempty"`
	USDRate           *decimal.Decimal `json:"usd_rate,omitempty"`
	AllowComments     *bool            `json:"allow_comments,omitempty"`
	AllowAnonymous    *bool            `json:"allow_anonymous,omitempty"`
	ExpirationDate    *time.Time       `json:"expiration_date,omitempty"`
	PaidAt            *time.Time       `json:"paid_at,omitempty"`
	PaidAnonymously   *bool            `json:"paid_anonymously,omitempty"`
	Comment           string           `json:"comment,omitempty"`
	HiddenMessage     string           `json:"hidden_message,omitempty"`
	Payload           string           `json:"payload,omitempty"`
	PaidButtonName    *PaidButtonName  `json:"paid_btn_name,omitempty"`
	PaidButtonURL     string           `json:"paid_btn_url,omitempty"`
}

type Invoices struct {
	Items []Invoice `json:"items" validate:"dive"`
}

type Transfer struct {
	TransferID  int64           `json:"transfer_id" validate:"required"`
	SpendID     string          `json:"spend_id,omitempty"`
	UserID      int64           `json:"user_id"`
	Asset       string          `json:"asset"`
	Amount      decimal.Decimal `json:"amount"`
	Status      TransferStatus  `json:"status"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	Comment     string          `json:"comment,omitempty"`
}

type Transfers struct {
	Items []Transfer `json:"items" validate:"dive"`
}

type Check struct {
	CheckID     int64           `json:"check_id" validate:"required"`
	Hash        string          `json:"hash"`
	Asset       string          `json:"asset"`
	Amount      decimal.Decimal `json:"amount"`
	BotCheckURL string          `json:"bot_check_url"`
	Status      CheckStatus     `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	ActivatedAt *time.Time      `json:"activated_at,omitempty"`
}

type Checks struct {
	Items []Check `json:"items" validate:"dive"`
}

type Balance struct {
	CurrencyCode string          `json:"currency_code"`
	Available    decimal.Decimal `json:"available"`
	Onhold       decimal.Decimal `json:"onhold"`
}

type ExchangeRate struct {
	IsValid  bool            `json:"is_valid"`
	IsCrypto bool            `json:"is_crypto"`
	IsFiat   bool            `json:"is_fiat"`
	Source   string          `json:"source"`
	Target   string          `json:"target"`
	Rate     decimal.Decimal `json:"rate"`
}

type Currency struct {
	IsBlockchain bool   `json:"is_blockchain"`
	IsStablecoin bool   `json:"is_stablecoin"`
	IsFiat       bool   `json:"is_fiat"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	URL          string `json:"url,omitempty"`
	Decimals     int    `json:"decimals"`
}

// Update is the webhook payload delivered by Crypto Pay. Field order matches
// the order the API signs.
type Update struct {
	UpdateID    int64      `json:"update_id" validate:"required"`
	UpdateType  UpdateType `json:"update_type" validate:"required"`
	RequestDate time.Time  `json:"request_date" validate:"required"`
	Payload     *Invoice   `json:"payload,omitempty"`
}
