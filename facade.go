package cryptopay

import (
	"fmt"

	cpcommand "github.com/goliatone/go-cryptopay/command"
	cpquery "github.com/goliatone/go-cryptopay/query"
)

type CommandQueryService interface {
	cpcommand.PaymentService
	cpquery.PaymentReader
}

type Commands struct {
	CreateInvoice *cpcommand.CreateInvoiceCommand
	DeleteInvoice *cpcommand.DeleteInvoiceCommand
	Transfer      *cpcommand.TransferCommand
	CreateCheck   *cpcommand.CreateCheckCommand
	DeleteCheck   *cpcommand.DeleteCheckCommand
}

type Queries struct {
	GetMe            *cpquery.GetMeQuery
	GetBalance       *cpquery.GetBalanceQuery
	GetExchangeRates *cpquery.GetExchangeRatesQuery
	GetCurrencies    *cpquery.GetCurrenciesQuery
	GetInvoices      *cpquery.GetInvoicesQuery
	GetTransfers     *cpquery.GetTransfersQuery
	GetChecks        *cpquery.GetChecksQuery
}

// Facade groups the command and query handlers built over one service,
// normally a *Client.
type Facade struct {
	service  CommandQueryService
	commands Commands
	queries  Queries
}

func NewFacade(service CommandQueryService) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("cryptopay: command/query service is required")
	}

	facade := &Facade{service: service}
	facade.commands = Commands{
		CreateInvoice: cpcommand.NewCreateInvoiceCommand(service),
		DeleteInvoice: cpcommand.NewDeleteInvoiceCommand(service),
		Transfer:      cpcommand.NewTransferCommand(service),
		CreateCheck:   cpcommand.NewCreateCheckCommand(service),
		DeleteCheck:   cpcommand.NewDeleteCheckCommand(service),
	}
	facade.queries = Queries{
		GetMe:            cpquery.NewGetMeQuery(service),
		GetBalance:       cpquery.NewGetBalanceQuery(service),
		GetExchangeRates: cpquery.NewGetExchangeRatesQuery(service),
		GetCurrencies:    cpquery.NewGetCurrenciesQuery(service),
		GetInvoices:      cpquery.NewGetInvoicesQuery(service),
		GetTransfers:     cpquery.NewGetTransfersQuery(service),
		GetChecks:        cpquery.NewGetChecksQuery(service),
	}

	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() CommandQueryService {
	if f == nil {
		return nil
	}
	return f.service
}

var _ CommandQueryService = (*Client)(nil)
