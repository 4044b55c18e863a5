package command

import (
	"context"
	"errors"
	"testing"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-cryptopay/core"
	"github.com/shopspring/decimal"
)

type stubPaymentService struct {
	createInvoiceFn func(context.Context, decimal.Decimal, core.CreateInvoiceOptions) (core.Invoice, error)
	deleteInvoiceFn func(context.Context, int64) (bool, error)
	transferFn      func(context.Context, int64, string, decimal.Decimal, core.TransferOptions) (core.Transfer, error)
	createCheckFn   func(context.Context, string, decimal.Decimal, core.CreateCheckOptions) (core.Check, error)
	deleteCheckFn   func(context.Context, int64) (bool, error)
}

func (s stubPaymentService) CreateInvoice(ctx context.Context, amount decimal.Decimal, opts core.CreateInvoiceOptions) (core.Invoice, error) {
	if s.createInvoiceFn == nil {
		return core.Invoice{}, nil
	}
	return s.createInvoiceFn(ctx, amount, opts)
}

func (s stubPaymentService) DeleteInvoice(ctx context.Context, invoiceID int64) (bool, error) {
	if s.deleteInvoiceFn == nil {
		return false, nil
	}
	return s.deleteInvoiceFn(ctx, invoiceID)
}

func (s stubPaymentService) Transfer(ctx context.Context, userID int64, asset string, amount decimal.Decimal, opts core.TransferOptions) (core.Transfer, error) {
	if s.transferFn == nil {
		return core.Transfer{}, nil
	}
	return s.transferFn(ctx, userID, asset, amount, opts)
}

func (s stubPaymentService) CreateCheck(ctx context.Context, asset string, amount decimal.Decimal, opts core.CreateCheckOptions) (core.Check, error) {
	if s.createCheckFn == nil {
		return core.Check{}, nil
	}
	return s.createCheckFn(ctx, asset, amount, opts)
}

func (s stubPaymentService) DeleteCheck(ctx context.Context, checkID int64) (bool, error) {
	if s.deleteCheckFn == nil {
		return false, nil
	}
	return s.deleteCheckFn(ctx, checkID)
}

func TestCreateInvoiceCommand_ExecuteDelegatesAndStoresResult(t *testing.T) {
	called := false
	svc := stubPaymentService{
		createInvoiceFn: func(_ context.Context, amount decimal.Decimal, opts core.CreateInvoiceOptions) (core.Invoice, error) {
			called = true
			if amount.String() != "12.5" {
				t.Fatalf("expected amount 12.5, got %s", amount)
			}
			if opts.Asset != "TON" || opts.ExpiresIn != 1800 {
				t.Fatalf("unexpected options: %#v", opts)
			}
			return core.Invoice{InvoiceID: 99, Status: core.InvoiceStatusActive}, nil
		},
	}

	cmd := NewCreateInvoiceCommand(svc)
	collector := gocmd.NewResult[core.Invoice]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)

	err := cmd.Execute(ctx, CreateInvoiceMessage{
		Amount:  decimal.RequireFromString("12.5"),
		Options: core.CreateInvoiceOptions{Asset: "TON", ExpiresIn: 1800},
	})
	if err != nil {
		t.Fatalf("execute create invoice: %v", err)
	}
	if !called {
		t.Fatalf("expected create invoice service invocation")
	}
	result, ok := collector.Load()
	if !ok {
		t.Fatalf("expected result to be stored")
	}
	if result.InvoiceID != 99 {
		t.Fatalf("unexpected result: %#v", result)
	}
}

func TestMutationCommands_DelegateToService(t *testing.T) {
	t.Run("delete invoice", func(t *testing.T) {
		svc := stubPaymentService{
			deleteInvoiceFn: func(_ context.Context, invoiceID int64) (bool, error) {
				if invoiceID != 7 {
					t.Fatalf("expected invoice 7, got %d", invoiceID)
				}
				return true, nil
			},
		}
		collector := gocmd.NewResult[bool]()
		ctx := gocmd.ContextWithResult(context.Background(), collector)
		if err := NewDeleteInvoiceCommand(svc).Execute(ctx, DeleteInvoiceMessage{InvoiceID: 7}); err != nil {
			t.Fatalf("execute delete invoice: %v", err)
		}
		if deleted, ok := collector.Load(); !ok || !deleted {
			t.Fatalf("expected deleted=true to be stored")
		}
	})

	t.Run("transfer", func(t *testing.T) {
		svc := stubPaymentService{
			transferFn: func(_ context.Context, userID int64, asset string, amount decimal.Decimal, opts core.TransferOptions) (core.Transfer, error) {
				if userID != 42 || asset != "USDT" || amount.String() != "3" || opts.SpendID != "order-1" {
					t.Fatalf("unexpected transfer input: %d %q %s %#v", userID, asset, amount, opts)
				}
				return core.Transfer{TransferID: 5, Status: core.TransferStatusCompleted}, nil
			},
		}
		collector := gocmd.NewResult[core.Transfer]()
		ctx := gocmd.ContextWithResult(context.Background(), collector)
		err := NewTransferCommand(svc).Execute(ctx, TransferMessage{
			UserID:  42,
			Asset:   "USDT",
			Amount:  decimal.NewFromInt(3),
			Options: core.TransferOptions{SpendID: "order-1"},
		})
		if err != nil {
			t.Fatalf("execute transfer: %v", err)
		}
		if transfer, ok := collector.Load(); !ok || transfer.TransferID != 5 {
			t.Fatalf("expected transfer 5 to be stored")
		}
	})

	t.Run("create and delete check", func(t *testing.T) {
		svc := stubPaymentService{
			createCheckFn: func(_ context.Context, asset string, amount decimal.Decimal, _ core.CreateCheckOptions) (core.Check, error) {
				if asset != "BNB" || amount.String() != "0.0123" {
					t.Fatalf("unexpected check input: %q %s", asset, amount)
				}
				return core.Check{CheckID: 11, Status: core.CheckStatusActive}, nil
			},
			deleteCheckFn: func(_ context.Context, checkID int64) (bool, error) {
				if checkID != 11 {
					t.Fatalf("expected check 11, got %d", checkID)
				}
				return true, nil
			},
		}
		created := gocmd.NewResult[core.Check]()
		ctx := gocmd.ContextWithResult(context.Background(), created)
		if err := NewCreateCheckCommand(svc).Execute(ctx, CreateCheckMessage{Asset: "BNB", Amount: decimal.RequireFromString("0.0123")}); err != nil {
			t.Fatalf("execute create check: %v", err)
		}
		check, ok := created.Load()
		if !ok || check.CheckID != 11 {
			t.Fatalf("expected check 11 to be stored")
		}
		if err := NewDeleteCheckCommand(svc).Execute(context.Background(), DeleteCheckMessage{CheckID: check.CheckID}); err != nil {
			t.Fatalf("execute delete check: %v", err)
		}
	})
}

func TestCommand_PropagatesServiceError(t *testing.T) {
	expected := errors.New("boom")
	svc := stubPaymentService{
		deleteCheckFn: func(context.Context, int64) (bool, error) {
			return false, expected
		},
	}
	collector := gocmd.NewResult[bool]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)
	err := NewDeleteCheckCommand(svc).Execute(ctx, DeleteCheckMessage{CheckID: 1})
	if !errors.Is(err, expected) {
		t.Fatalf("expected service error, got %v", err)
	}
	if _, ok := collector.Load(); ok {
		t.Fatalf("expected no result to be stored on failure")
	}
}
