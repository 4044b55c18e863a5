package command

import (
	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-cryptopay/core"
)

var (
	_ gocmd.Commander[CreateInvoiceMessage] = (*CreateInvoiceCommand)(nil)
	_ gocmd.Commander[DeleteInvoiceMessage] = (*DeleteInvoiceCommand)(nil)
	_ gocmd.Commander[TransferMessage]      = (*TransferCommand)(nil)
	_ gocmd.Commander[CreateCheckMessage]   = (*CreateCheckCommand)(nil)
	_ gocmd.Commander[DeleteCheckMessage]   = (*DeleteCheckCommand)(nil)

	_ PaymentService = (*core.Client)(nil)
)
