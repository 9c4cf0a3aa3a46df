package ledger

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/datatypes"

	"github.com/feral-file/supplier-ledger/internal/adapter"
	"github.com/feral-file/supplier-ledger/internal/domain"
	"github.com/feral-file/supplier-ledger/internal/store"
	"github.com/feral-file/supplier-ledger/internal/store/schema"
	"github.com/feral-file/supplier-ledger/internal/transfer"
)

// Ledger defines the earnings accounting operations. All mutating operations
// delegate to single store transactions, so calls never interleave their
// read-modify-write sequences.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// MakeSupply registers an item for the owner; idempotent for the same owner
	MakeSupply(ctx context.Context, item domain.ItemKey, owner common.Address, description string, attributes datatypes.JSON) error
	// RevokeSupply removes an owner's supply record and its metadata
	RevokeSupply(ctx context.Context, item domain.ItemKey, caller common.Address) error
	// IsSupplied reports whether the item is actively supplied
	IsSupplied(ctx context.Context, item domain.ItemKey) (bool, error)
	// GetSupplyInfo returns the stored metadata for a supplied item (nil if absent)
	GetSupplyInfo(ctx context.Context, item domain.ItemKey) (*schema.SupplyMetadata, error)
	// TotalSupplySize returns the active supply count
	TotalSupplySize(ctx context.Context) (int64, error)

	// PurchaseData settles a purchase across the active supply set
	PurchaseData(ctx context.Context, amount *big.Int) (*domain.Settlement, error)
	// GetEarnings returns an account's unclaimed balance
	GetEarnings(ctx context.Context, account common.Address) (*big.Int, error)

	// ClaimEarnings withdraws an account's full unclaimed balance
	ClaimEarnings(ctx context.Context, account common.Address) (*schema.Claim, error)
	// GetClaims returns an account's claim history, most recent first
	GetClaims(ctx context.Context, account common.Address) ([]schema.Claim, error)

	// GetRoundingDust returns the retained, unallocated settlement remainder
	GetRoundingDust(ctx context.Context) (*big.Int, error)
}

type ledger struct {
	store      store.Store
	transferer transfer.Transferer
	clock      adapter.Clock
}

// New creates a ledger backed by the given store and fund transferer
func New(st store.Store, tr transfer.Transferer, clock adapter.Clock) Ledger {
	return &ledger{
		store:      st,
		transferer: tr,
		clock:      clock,
	}
}

func (l *ledger) MakeSupply(ctx context.Context, item domain.ItemKey, owner common.Address, description string, attributes datatypes.JSON) error {
	return l.store.RegisterSupply(ctx, item, domain.NormalizeAddress(owner), description, attributes)
}

func (l *ledger) RevokeSupply(ctx context.Context, item domain.ItemKey, caller common.Address) error {
	return l.store.RevokeSupply(ctx, item, domain.NormalizeAddress(caller))
}

func (l *ledger) IsSupplied(ctx context.Context, item domain.ItemKey) (bool, error) {
	return l.store.IsSupplied(ctx, item)
}

func (l *ledger) GetSupplyInfo(ctx context.Context, item domain.ItemKey) (*schema.SupplyMetadata, error) {
	return l.store.GetSupplyMetadata(ctx, item)
}

func (l *ledger) TotalSupplySize(ctx context.Context) (int64, error) {
	return l.store.TotalSupplySize(ctx)
}

func (l *ledger) PurchaseData(ctx context.Context, amount *big.Int) (*domain.Settlement, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	return l.store.SettlePurchase(ctx, amount)
}

func (l *ledger) GetEarnings(ctx context.Context, account common.Address) (*big.Int, error) {
	return l.store.GetEarnings(ctx, domain.NormalizeAddress(account))
}

func (l *ledger) ClaimEarnings(ctx context.Context, account common.Address) (*schema.Claim, error) {
	claimedAt := l.clock.Now().UTC()

	return l.store.SettleClaim(ctx, domain.NormalizeAddress(account), claimedAt,
		func(ctx context.Context, to string, amount *big.Int) (string, error) {
			txHash, err := l.transferer.Transfer(ctx, common.HexToAddress(to), amount)
			if err != nil {
				return "", err
			}
			return txHash.Hex(), nil
		})
}

func (l *ledger) GetClaims(ctx context.Context, account common.Address) ([]schema.Claim, error) {
	return l.store.GetClaims(ctx, domain.NormalizeAddress(account))
}

func (l *ledger) GetRoundingDust(ctx context.Context) (*big.Int, error) {
	return l.store.GetRoundingDust(ctx)
}
