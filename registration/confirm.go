package registration

import (
	"context"
)

// StatusApproved is the provider status that triggers persistence.
const StatusApproved = "approved"

// VerifiedPayment is the authoritative payment state re-fetched from the
// provider's API. The callback body's status is never trusted directly.
type VerifiedPayment struct {
	ID       string
	Status   string
	Amount   float64
	Metadata string
}

// ConfirmPayment reconstructs the registration from the metadata echoed
// back by the provider, attaches the verified payment fields and inserts
// the record. A payment id that was already recorded surfaces as an
// ALREADY_RECORDED error; the caller treats that as a benign outcome.
//
// Each step is a single attempt. Retries, if ever wanted, can be layered
// on top without changing this contract.
func ConfirmPayment(ctx context.Context, payment VerifiedPayment, repo Repository) (Registration, error) {
	reg, err := DecodeMetadata(payment.Metadata)
	if err != nil {
		return nil, err
	}

	reg = withPayment(reg, PaymentInfo{
		PaymentID: payment.ID,
		Amount:    payment.Amount,
		Status:    payment.Status,
	})

	if err := repo.InsertRegistration(ctx, reg); err != nil {
		return nil, err
	}

	return reg, nil
}

func withPayment(reg Registration, payment PaymentInfo) Registration {
	switch r := reg.(type) {
	case IndividualRegistration:
		r.PaymentInfo = &payment
		return r
	case SociosRegistration:
		r.PaymentInfo = &payment
		return r
	default:
		panic("unknown registration kind")
	}
}
