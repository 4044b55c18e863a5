package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-cryptopay/core"
	"github.com/shopspring/decimal"
)

// PaymentService is the mutating part of *core.Client.
type PaymentService interface {
	CreateInvoice(ctx context.Context, amount decimal.Decimal, opts core.CreateInvoiceOptions) (core.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID int64) (bool, error)
	Transfer(ctx context.Context, userID int64, asset string, amount decimal.Decimal, opts core.TransferOptions) (core.Transfer, error)
	CreateCheck(ctx context.Context, asset string, amount decimal.Decimal, opts core.CreateCheckOptions) (core.Check, error)
	DeleteCheck(ctx context.Context, checkID int64) (bool, error)
}

type CreateInvoiceCommand struct {
	service PaymentService
}

func NewCreateInvoiceCommand(service PaymentService) *CreateInvoiceCommand {
	return &CreateInvoiceCommand{service: service}
}

func (c *CreateInvoiceCommand) Execute(ctx context.Context, msg CreateInvoiceMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: create invoice service is required")
	}
	out, err := c.service.CreateInvoice(ctx, msg.Amount, msg.Options)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type DeleteInvoiceCommand struct {
	service PaymentService
}

func NewDeleteInvoiceCommand(service PaymentService) *DeleteInvoiceCommand {
	return &DeleteInvoiceCommand{service: service}
}

func (c *DeleteInvoiceCommand) Execute(ctx context.Context, msg DeleteInvoiceMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: delete invoice service is required")
	}
	out, err := c.service.DeleteInvoice(ctx, msg.InvoiceID)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type TransferCommand struct {
	service PaymentService
}

func NewTransferCommand(service PaymentService) *TransferCommand {
	return &TransferCommand{service: service}
}

func (c *TransferCommand) Execute(ctx context.Context, msg TransferMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: transfer service is required")
	}
	out, err := c.service.Transfer(ctx, msg.UserID, msg.Asset, msg.Amount, msg.Options)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type CreateCheckCommand struct {
	service PaymentService
}

func NewCreateCheckCommand(service PaymentService) *CreateCheckCommand {
	return &CreateCheckCommand{service: service}
}

func (c *CreateCheckCommand) Execute(ctx context.Context, msg CreateCheckMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: create check service is required")
	}
	out, err := c.service.CreateCheck(ctx, msg.Asset, msg.Amount, msg.Options)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type DeleteCheckCommand struct {
	service PaymentService
}

func NewDeleteCheckCommand(service PaymentService) *DeleteCheckCommand {
	return &DeleteCheckCommand{service: service}
}

func (c *DeleteCheckCommand) Execute(ctx context.Context, msg DeleteCheckMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: delete check service is required")
	}
	out, err := c.service.DeleteCheck(ctx, msg.CheckID)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
