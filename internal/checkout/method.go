package checkout

import (
	"fmt"
	"time"
)

type Method string

const (
	MethodCreditCard     Method = "credit-card"
	MethodDebitCard      Method = "debit-card"
	MethodUPI            Method = "upi"
	MethodNetBanking     Method = "netbanking"
	MethodWallet         Method = "wallet"
	MethodDirectTransfer Method = "direct-transfer"
	MethodCOD            Method = "cod"
)

func (m Method) Known() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodUPI, MethodNetBanking,
		MethodWallet, MethodDirectTransfer, MethodCOD:
		return true
	}
	return false
}

// Card reports whether the method needs the card sub-form.
func (m Method) Card() bool {
	return m == MethodCreditCard || m == MethodDebitCard
}

// GatewayBacked reports whether funds movement is delegated to the external
// gateway. cod and direct-transfer settle without it.
func (m Method) GatewayBacked() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodUPI, MethodNetBanking, MethodWallet:
		return true
	}
	return false
}

func (m Method) transactionPrefix() string {
	switch m {
	case MethodUPI:
		return "UPI"
	case MethodCOD:
		return "COD"
	default:
		return "TXN"
	}
}

// MintTransactionID builds the method-prefixed, timestamp-suffixed
// identifier recorded on locally settled payments, e.g. COD-1714989049123.
func MintTransactionID(m Method, now time.Time) string {
	return fmt.Sprintf("%s-%d", m.transactionPrefix(), now.UnixMilli())
}
