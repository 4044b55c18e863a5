package gocommand

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-command"
	commanddispatcher "github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	cpcommand "github.com/goliatone/go-cryptopay/command"
	"github.com/goliatone/go-cryptopay/core"
	cpquery "github.com/goliatone/go-cryptopay/query"
)

// ValidateMessageContract enforces Type() plus optional Validate() contract.
func ValidateMessageContract(msg any) error {
	if err := command.ValidateMessage(msg); err != nil {
		return err
	}
	m, ok := msg.(command.Message)
	if !ok {
		return fmt.Errorf("gocommand: message must implement Type() string")
	}
	if strings.TrimSpace(m.Type()) == "" {
		return fmt.Errorf("gocommand: message type is required")
	}
	return nil
}

type RegistryAdapter struct {
	registry *command.Registry
}

func NewRegistryAdapter(registry *command.Registry) *RegistryAdapter {
	if registry == nil {
		registry = command.NewRegistry()
	}
	return &RegistryAdapter{registry: registry}
}

func (a *RegistryAdapter) Registry() *command.Registry {
	if a == nil {
		return nil
	}
	return a.registry
}

func (a *RegistryAdapter) RegisterCommand(cmd any) error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.RegisterCommand(cmd)
}

func (a *RegistryAdapter) RegisterQuery(qry any) error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.RegisterCommand(qry)
}

func (a *RegistryAdapter) Initialize() error {
	if a == nil || a.registry == nil {
		return fmt.Errorf("gocommand: registry is not configured")
	}
	return a.registry.Initialize()
}

func Dispatch[T any](ctx context.Context, msg T) error {
	return commanddispatcher.Dispatch(ctx, msg)
}

func Query[T any, R any](ctx context.Context, msg T) (R, error) {
	return commanddispatcher.Query[T, R](ctx, msg)
}

func RegisterAndSubscribe[T any](
	adapter *RegistryAdapter,
	cmd command.Commander[T],
	runnerOpts ...runner.Option,
) (commanddispatcher.Subscription, error) {
	if adapter == nil || adapter.registry == nil {
		return nil, fmt.Errorf("gocommand: registry is not configured")
	}
	if cmd == nil {
		return nil, fmt.Errorf("gocommand: command is required")
	}
	subscription := commanddispatcher.SubscribeCommand(cmd, runnerOpts...)
	if err := adapter.RegisterCommand(cmd); err != nil {
		if subscription != nil {
			subscription.Unsubscribe()
		}
		return nil, err
	}
	return subscription, nil
}

func RegisterAndSubscribeQuery[T any, R any](
	adapter *RegistryAdapter,
	qry command.Querier[T, R],
	runnerOpts ...runner.Option,
) (commanddispatcher.Subscription, error) {
	if adapter == nil || adapter.registry == nil {
		return nil, fmt.Errorf("gocommand: registry is not configured")
	}
	if qry == nil {
		return nil, fmt.Errorf("gocommand: query is required")
	}
	subscription := commanddispatcher.SubscribeQuery(qry, runnerOpts...)
	if err := adapter.RegisterQuery(qry); err != nil {
		if subscription != nil {
			subscription.Unsubscribe()
		}
		return nil, err
	}
	return subscription, nil
}

// Subscriptions groups the dispatcher subscriptions made by RegisterClient.
type Subscriptions []commanddispatcher.Subscription

func (s Subscriptions) Unsubscribe() {
	for _, subscription := range s {
		if subscription != nil {
			subscription.Unsubscribe()
		}
	}
}

// RegisterClient subscribes every Crypto Pay command and query handler backed
// by client. On error the subscriptions made so far are released.
func RegisterClient(adapter *RegistryAdapter, client *core.Client, runnerOpts ...runner.Option) (Subscriptions, error) {
	if client == nil {
		return nil, fmt.Errorf("gocommand: client is required")
	}
	var subs Subscriptions
	register := func(sub commanddispatcher.Subscription, err error) error {
		if err != nil {
			subs.Unsubscribe()
			return err
		}
		subs = append(subs, sub)
		return nil
	}

	steps := []func() error{
		func() error {
			return register(RegisterAndSubscribe[cpcommand.CreateInvoiceMessage](adapter, cpcommand.NewCreateInvoiceCommand(client), runnerOpts...))
		},
		func() error {
			return register(RegisterAndSubscribe[cpcommand.DeleteInvoiceMessage](adapter, cpcommand.NewDeleteInvoiceCommand(client), runnerOpts...))
		},
		func() error {
			return register(RegisterAndSubscribe[cpcommand.TransferMessage](adapter, cpcommand.NewTransferCommand(client), runnerOpts...))
		},
		func() error {
			return register(RegisterAndSubscribe[cpcommand.CreateCheckMessage](adapter, cpcommand.NewCreateCheckCommand(client), runnerOpts...))
		},
		func() error {
			return register(RegisterAndSubscribe[cpcommand.DeleteCheckMessage](adapter, cpcommand.NewDeleteCheckCommand(client), runnerOpts...))
		},
		func() error {
			return register(RegisterAndSubscribeQuery[cpquery.GetMeMessage, core.Application](adapter, cpquery.NewGetMeQuery(client), runnerOpts...))
		},
		func() error {
			return register(RegisterAndSubscribeQuery[cpquery.GetBalanceMessage, []core.Balance](adapter, cpquery.NewGetBalanceQuery(client), runnerOpts...))
		},
		func() error {
			return register(RegisterAndSubscribeQuery[cpquery.GetExchangeRatesMessage, []core.ExchangeRate](adapter, cpquery.NewGetExchangeRatesQuery(client), runnerOpts...))
		},
		func() error {
			return register(RegisterAndSubscribeQuery[cpquery.GetCurrenciesMessage, []core.Currency](adapter, cpquery.NewGetCurrenciesQuery(client), runnerOpts...))
		},
		func() error {
			return register(RegisterAndSubscribeQuery[cpquery.GetInvoicesMessage, core.Invoices](adapter, cpquery.NewGetInvoicesQuery(client), runnerOpts...))
		},
		func() error {
			return register(RegisterAndSubscribeQuery[cpquery.GetTransfersMessage, core.Transfers](adapter, cpquery.NewGetTransfersQuery(client), runnerOpts...))
		},
		func() error {
			return register(RegisterAndSubscribeQuery[cpquery.GetChecksMessage, core.Checks](adapter, cpquery.NewGetChecksQuery(client), runnerOpts...))
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return subs, nil
}
