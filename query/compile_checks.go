package query

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-cryptopay/core"
)

var (
	_ gocmd.Querier[GetMeMessage, core.Application]               = (*GetMeQuery)(nil)
	_ gocmd.Querier[GetBalanceMessage, []core.Balance]            = (*GetBalanceQuery)(nil)
	_ gocmd.Querier[GetExchangeRatesMessage, []core.ExchangeRate] = (*GetExchangeRatesQuery)(nil)
	_ gocmd.Querier[GetCurrenciesMessage, []core.Currency]        = (*GetCurrenciesQuery)(nil)
	_ gocmd.Querier[GetInvoicesMessage, core.Invoices]            = (*GetInvoicesQuery)(nil)
	_ gocmd.Querier[GetTransfersMessage, core.Transfers]          = (*GetTransfersQuery)(nil)
	_ gocmd.Querier[GetChecksMessage, core.Checks]                = (*GetChecksQuery)(nil)

	_ PaymentReader = (*core.Client)(nil)
)
