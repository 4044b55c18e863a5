package cryptopay

import (
	"github.com/goliatone/go-cryptopay/core"
	"github.com/goliatone/go-cryptopay/transport"
)

const (
	DefaultAPIURL = core.DefaultAPIURL
	TestnetAPIURL = core.TestnetAPIURL
)

type Config = core.Config

type Option = core.Option

type Client = core.Client

type Application = core.Application
type Invoice = core.Invoice
type Invoices = core.Invoices
type Transfer = core.Transfer
type Transfers = core.Transfers
type Check = core.Check
type Checks = core.Checks
type Balance = core.Balance
type ExchangeRate = core.ExchangeRate
type Currency = core.Currency
type Update = core.Update

type CreateInvoiceOptions = core.CreateInvoiceOptions
type TransferOptions = core.TransferOptions
type ListInvoicesOptions = core.ListInvoicesOptions
type ListTransfersOptions = core.ListTransfersOptions
type CreateCheckOptions = core.CreateCheckOptions
type ListChecksOptions = core.ListChecksOptions

type RequestError = core.RequestError
type TransportError = core.TransportError

var (
	WithLogger          = core.WithLogger
	WithLoggerProvider  = core.WithLoggerProvider
	WithMetricsRecorder = core.WithMetricsRecorder
	WithErrorMapper     = core.WithErrorMapper
	WithConfigProvider  = core.WithConfigProvider
	WithOptionsResolver = core.WithOptionsResolver
	WithTransport       = core.WithTransport
	WithCodec           = core.WithCodec
	WithAPIURL          = core.WithAPIURL
	WithTimeout         = core.WithTimeout
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

// New builds a client for token that talks to the main API over the REST
// transport. Later options win, so WithTransport and WithAPIURL replace the
// defaults.
func New(token string, opts ...Option) (*Client, error) {
	base := []Option{
		core.WithToken(token),
		core.WithTransport(transport.NewRESTAdapter(nil)),
	}
	return core.NewClient(core.Config{}, append(base, opts...)...)
}

// NewClient builds a client from cfg. Unlike New it leaves the transport to
// the caller's options when one is given.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{core.WithTransport(transport.NewRESTAdapter(nil))}
	return core.NewClient(cfg, append(base, opts...)...)
}
