package models

import "testing"

func TestPaymentMethodIsValid(t *testing.T) {
	for _, m := range PaymentMethods {
		if !m.IsValid() {
			t.Errorf("%s should be valid", m)
		}
	}
	for _, m := range []PaymentMethod{"", "card", "CASH", "net_banking"} {
		if m.IsValid() {
			t.Errorf("%s should not be valid", m)
		}
	}
}

func TestPaymentMethodRequiresReference(t *testing.T) {
	if MethodCash.RequiresReference() {
		t.Error("cash must not require a reference")
	}
	for _, m := range []PaymentMethod{MethodCheque, MethodUPI, MethodBankTransfer} {
		if !m.RequiresReference() {
			t.Errorf("%s must require a reference", m)
		}
	}
}
