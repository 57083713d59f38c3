package models

// PaymentMethod is the mode a payment was made with.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCheque       PaymentMethod = "cheque"
	MethodUPI          PaymentMethod = "upi"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// PaymentMethods lists every accepted payment method.
var PaymentMethods = []PaymentMethod{MethodCash, MethodCheque, MethodUPI, MethodBankTransfer}

// IsValid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCheque, MethodUPI, MethodBankTransfer:
		return true
	}
	return false
}

// RequiresReference reports whether a transaction reference (cheque number,
// UTR, UPI reference) is mandatory for this method. Cash payments never
// carry one.
func (m PaymentMethod) RequiresReference() bool {
	return m != MethodCash
}
