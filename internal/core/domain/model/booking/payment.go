package booking

import (
	"errors"
	"fmt"

	"booking/internal/pkg/errs"
)

// PaymentMethod is the method picked at checkout.
type PaymentMethod string

const (
	CreditCard     PaymentMethod = "credit-card"
	DebitCard      PaymentMethod = "debit-card"
	NetBanking     PaymentMethod = "net-banking"
	UPI            PaymentMethod = "upi"
	CashOnDelivery PaymentMethod = "cash-on-delivery"
)

func (m PaymentMethod) Validate() error {
	switch m {
	case CreditCard, DebitCard, NetBanking, UPI, CashOnDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not supported", string(m)))
	}
}

func (m PaymentMethod) IsCard() bool {
	return m == CreditCard || m == DebitCard
}

// PaymentForm is the raw payment section of the checkout form.
type PaymentForm struct {
	Method         PaymentMethod
	CardNumber     string
	ExpiryDate     string
	CVV            string
	CardholderName string
	BankName       string
	AccountNumber  string
	IFSCCode       string
}

// Payment is what the receipt keeps of the payment form: the method and the
// name on it. Card and account numbers never leave the form.
type Payment struct {
	Method PaymentMethod
	Holder string
}

// NewPayment checks the fields required by the selected method and reduces
// the form to a Payment.
func NewPayment(form PaymentForm) (Payment, error) {
	if err := form.Method.Validate(); err != nil {
		return Payment{}, err
	}

	switch {
	case form.Method.IsCard():
		if err := errors.Join(
			required("cardNumber", form.CardNumber),
			required("expiryDate", form.ExpiryDate),
			required("cvv", form.CVV),
			required("cardholderName", form.CardholderName),
		); err != nil {
			return Payment{}, err
		}
		return Payment{Method: form.Method, Holder: form.CardholderName}, nil
	case form.Method == NetBanking:
		if err := errors.Join(
			required("bankName", form.BankName),
			required("accountNumber", form.AccountNumber),
			required("ifscCode", form.IFSCCode),
		); err != nil {
			return Payment{}, err
		}
		return Payment{Method: form.Method, Holder: form.BankName}, nil
	default:
		return Payment{Method: form.Method}, nil
	}
}
