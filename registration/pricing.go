package registration

import (
	"github.com/Rhymond/go-money"
)

// PromotionalSlots is how many confirmed individual registrations get the
// promotional price. The count is a plain read, so two submissions racing
// near the threshold can both land the promo price.
const PromotionalSlots = 5

var (
	// R$ 0,10 for the first PromotionalSlots individual registrations.
	IndividualPromoPrice = money.New(10, money.BRL)
	// R$ 3.597,00 after the promotional slots run out.
	IndividualPrice = money.New(359700, money.BRL)
	// R$ 0,01 flat for a pair of socios.
	SociosPrice = money.New(1, money.BRL)
)

// PriceFor computes the checkout price for a registration of the given
// kind, with confirmedIndividuals being the store's current count of
// confirmed individual registrations.
func PriceFor(kind Kind, confirmedIndividuals int64) (*money.Money, error) {
	switch kind {
	case KIND_INDIVIDUAL:
		if confirmedIndividuals < PromotionalSlots {
			return IndividualPromoPrice, nil
		}
		return IndividualPrice, nil
	case KIND_SOCIOS:
		return SociosPrice, nil
	default:
		return nil, NewUnknownKindError(string(kind))
	}
}
