package query

import (
	"context"

	"github.com/goliatone/go-cryptopay/core"
)

// PaymentReader is the read-only part of *core.Client.
type PaymentReader interface {
	GetMe(ctx context.Context) (core.Application, error)
	GetBalance(ctx context.Context) ([]core.Balance, error)
	GetExchangeRates(ctx context.Context) ([]core.ExchangeRate, error)
	GetCurrencies(ctx context.Context) ([]core.Currency, error)
	GetInvoices(ctx context.Context, opts core.ListInvoicesOptions) (core.Invoices, error)
	GetTransfers(ctx context.Context, opts core.ListTransfersOptions) (core.Transfers, error)
	GetChecks(ctx context.Context, opts core.ListChecksOptions) (core.Checks, error)
}

type GetMeQuery struct {
	reader PaymentReader
}

func NewGetMeQuery(reader PaymentReader) *GetMeQuery {
	return &GetMeQuery{reader: reader}
}

func (q *GetMeQuery) Query(ctx context.Context, _ GetMeMessage) (core.Application, error) {
	if q == nil || q.reader == nil {
		return core.Application{}, queryDependencyError("query: payment reader is required")
	}
	return q.reader.GetMe(ctx)
}

type GetBalanceQuery struct {
	reader PaymentReader
}

func NewGetBalanceQuery(reader PaymentReader) *GetBalanceQuery {
	return &GetBalanceQuery{reader: reader}
}

func (q *GetBalanceQuery) Query(ctx context.Context, _ GetBalanceMessage) ([]core.Balance, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: payment reader is required")
	}
	return q.reader.GetBalance(ctx)
}

type GetExchangeRatesQuery struct {
	reader PaymentReader
}

func NewGetExchangeRatesQuery(reader PaymentReader) *GetExchangeRatesQuery {
	return &GetExchangeRatesQuery{reader: reader}
}

func (q *GetExchangeRatesQuery) Query(ctx context.Context, _ GetExchangeRatesMessage) ([]core.ExchangeRate, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: payment reader is required")
	}
	return q.reader.GetExchangeRates(ctx)
}

type GetCurrenciesQuery struct {
	reader PaymentReader
}

func NewGetCurrenciesQuery(reader PaymentReader) *GetCurrenciesQuery {
	return &GetCurrenciesQuery{reader: reader}
}

func (q *GetCurrenciesQuery) Query(ctx context.Context, _ GetCurrenciesMessage) ([]core.Currency, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: payment reader is required")
	}
	return q.reader.GetCurrencies(ctx)
}

type GetInvoicesQuery struct {
	reader PaymentReader
}

func NewGetInvoicesQuery(reader PaymentReader) *GetInvoicesQuery {
	return &GetInvoicesQuery{reader: reader}
}

func (q *GetInvoicesQuery) Query(ctx context.Context, msg GetInvoicesMessage) (core.Invoices, error) {
	if q == nil || q.reader == nil {
		return core.Invoices{}, queryDependencyError("query: payment reader is required")
	}
	return q.reader.GetInvoices(ctx, msg.Filter)
}

type GetTransfersQuery struct {
	reader PaymentReader
}

func NewGetTransfersQuery(reader PaymentReader) *GetTransfersQuery {
	return &GetTransfersQuery{reader: reader}
}

func (q *GetTransfersQuery) Query(ctx context.Context, msg GetTransfersMessage) (core.Transfers, error) {
	if q == nil || q.reader == nil {
		return core.Transfers{}, queryDependencyError("query: payment reader is required")
	}
	return q.reader.GetTransfers(ctx, msg.Filter)
}

type GetChecksQuery struct {
	reader PaymentReader
}

func NewGetChecksQuery(reader PaymentReader) *GetChecksQuery {
	return &GetChecksQuery{reader: reader}
}

func (q *GetChecksQuery) Query(ctx context.Context, msg GetChecksMessage) (core.Checks, error) {
	if q == nil || q.reader == nil {
		return core.Checks{}, queryDependencyError("query: payment reader is required")
	}
	return q.reader.GetChecks(ctx, msg.Filter)
}
