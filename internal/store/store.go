package store

import (
	"context"
	"math/big"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/feral-file/supplier-ledger/internal/domain"
	"github.com/feral-file/supplier-ledger/internal/store/schema"
)

// TransferFunc executes the external fund transfer for a claim and returns the
// transaction hash used as the claim id. It runs inside the claim transaction:
// returning an error rolls back the claim record and the balance zeroing.
type TransferFunc func(ctx context.Context, to string, amount *big.Int) (string, error)

// Store defines the interface for ledger database operations.
// Every mutating method executes as a single transaction with row locks on the
// rows it reads before writing, reproducing the single-writer execution model
// of the origin contract.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// RegisterSupply registers item -> owner with the given description and
	// optional structured attributes. Idempotent when the item is already owned
	// by the same account; returns domain.ErrAlreadySuppliedByOther when it is
	// held by a different one.
	RegisterSupply(ctx context.Context, item domain.ItemKey, owner string, description string, attributes datatypes.JSON) error
	// RevokeSupply removes an active supply record and its metadata.
	// Returns domain.ErrNotFound or domain.ErrNotOwner on ownership violations.
	RevokeSupply(ctx context.Context, item domain.ItemKey, caller string) error
	// IsSupplied reports whether the item has an active supply record
	IsSupplied(ctx context.Context, item domain.ItemKey) (bool, error)
	// TotalSupplySize returns the number of active supply records
	TotalSupplySize(ctx context.Context) (int64, error)
	// GetSupplyMetadata retrieves the description attached to a supply record (nil if absent)
	GetSupplyMetadata(ctx context.Context, item domain.ItemKey) (*schema.SupplyMetadata, error)

	// SettlePurchase splits the payment across the active supply set and credits
	// owner balances; the undistributed remainder accumulates in the dust counter.
	// Returns domain.ErrNoSupplyAvailable when the active set is empty.
	SettlePurchase(ctx context.Context, amount *big.Int) (*domain.Settlement, error)
	// GetEarnings returns the current unclaimed balance for an account (zero if absent)
	GetEarnings(ctx context.Context, account string) (*big.Int, error)

	// SettleClaim atomically transfers the full unclaimed balance, appends a claim
	// record and its outbox event, and zeroes the balance. Returns
	// domain.ErrNothingToClaim for empty balances and rolls everything back when
	// the transfer fails.
	SettleClaim(ctx context.Context, supplier string, claimedAt time.Time, transfer TransferFunc) (*schema.Claim, error)
	// GetClaims returns an account's claims, most recent first (stable order)
	GetClaims(ctx context.Context, supplier string) ([]schema.Claim, error)

	// GetRoundingDust returns the accumulated undistributed remainder
	GetRoundingDust(ctx context.Context) (*big.Int, error)

	// GetUnpublishedClaimEvents retrieves outbox rows awaiting delivery, oldest first
	GetUnpublishedClaimEvents(ctx context.Context, limit int) ([]schema.ClaimOutbox, error)
	// MarkClaimEventPublished marks an outbox row as delivered
	MarkClaimEventPublished(ctx context.Context, id string, publishedAt time.Time) error
}

// Migrate creates or updates the ledger tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.SupplyRecord{},
		&schema.SupplyMetadata{},
		&schema.EarningsBalance{},
		&schema.Claim{},
		&schema.ClaimOutbox{},
		&schema.KeyValueStore{},
	)
}
