package transfer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Transferer executes payout transfers for claim settlement. Implementations
// must be synchronous: when Transfer returns without error the funds are
// committed to the network, and the returned hash identifies the transaction.
//
//go:generate mockgen -source=transfer.go -destination=../mocks/transferer.go -package=mocks -mock_names=Transferer=MockTransferer
type Transferer interface {
	// Transfer sends amount (base units) to the given address
	Transfer(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error)
	// Close releases the underlying connection
	Close()
}
