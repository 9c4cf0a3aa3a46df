package domain

import "math/big"

// Settlement is the outcome of splitting one purchase across the active supply set.
type Settlement struct {
	// Share is the per-item credit: floor(amount / item count)
	Share *big.Int
	// Credits maps each owner to its total credit (Share once per item owned)
	Credits map[string]*big.Int
	// Dust is the undistributed remainder: amount mod item count.
	// It is retained and never paid out.
	Dust *big.Int
}

// SplitPayment computes the pro-rata settlement of a purchase. itemOwners holds
// the owner of every active supply item, one entry per item, so an owner with k
// items appears k times and receives k*floor(amount/len(itemOwners)).
//
// Returns ErrNoSupplyAvailable when the active set is empty and ErrInvalidAmount
// for non-positive amounts; the payment must be refused, never absorbed.
func SplitPayment(amount *big.Int, itemOwners []string) (*Settlement, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(itemOwners) == 0 {
		return nil, ErrNoSupplyAvailable
	}

	count := big.NewInt(int64(len(itemOwners)))
	share, dust := new(big.Int).QuoRem(amount, count, new(big.Int))

	credits := make(map[string]*big.Int, len(itemOwners))
	for _, owner := range itemOwners {
		credit, ok := credits[owner]
		if !ok {
			credit = new(big.Int)
			credits[owner] = credit
		}
		credit.Add(credit, share)
	}

	return &Settlement{
		Share:   share,
		Credits: credits,
		Dust:    dust,
	}, nil
}
