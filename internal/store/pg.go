package store

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/supplier-ledger/internal/domain"
	"github.com/feral-file/supplier-ledger/internal/store/schema"
)

// roundingDustKey is the key_value_store entry holding the undistributed
// settlement remainder. Retained, never paid out.
const roundingDustKey = "rounding_dust"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// RegisterSupply registers item -> owner if not already registered to a different owner
func (s *pgStore) RegisterSupply(ctx context.Context, item domain.ItemKey, owner string, description string, attributes datatypes.JSON) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the record so a concurrent register/revoke on the same item serializes here
		var record schema.SupplyRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("contract_address = ? AND token_number = ?", item.Contract(), item.TokenNumber).
			First(&record).Error

		switch {
		case err == nil:
			if record.OwnerAddress != owner {
				return domain.ErrAlreadySuppliedByOther
			}
			// Re-supplying an owned item is a no-op for the registry; the
			// description may still be refreshed below.
		case errors.Is(err, gorm.ErrRecordNotFound):
			record = schema.SupplyRecord{
				ContractAddress: item.Contract(),
				TokenNumber:     item.TokenNumber,
				OwnerAddress:    owner,
			}
			// A concurrent register for the same item can commit between the
			// lookup and this insert; the unique index picks the winner and
			// the loser re-reads the row to report the owner conflict
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "contract_address"}, {Name: "token_number"}},
				DoNothing: true,
			}).Create(&record)
			if result.Error != nil {
				return fmt.Errorf("failed to create supply record: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				var existing schema.SupplyRecord
				if err := tx.
					Where("contract_address = ? AND token_number = ?", item.Contract(), item.TokenNumber).
					First(&existing).Error; err != nil {
					return fmt.Errorf("failed to re-read supply record: %w", err)
				}
				if existing.OwnerAddress != owner {
					return domain.ErrAlreadySuppliedByOther
				}
			}
		default:
			return fmt.Errorf("failed to lock supply record: %w", err)
		}

		metadata := schema.SupplyMetadata{
			ItemKey:     item.String(),
			Description: description,
			Attributes:  attributes,
		}
		if err := tx.Save(&metadata).Error; err != nil {
			return fmt.Errorf("failed to upsert supply metadata: %w", err)
		}

		return nil
	})
}

// RevokeSupply removes the mapping if caller owns it, together with its metadata
func (s *pgStore) RevokeSupply(ctx context.Context, item domain.ItemKey, caller string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record schema.SupplyRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("contract_address = ? AND token_number = ?", item.Contract(), item.TokenNumber).
			First(&record).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to lock supply record: %w", err)
		}

		if record.OwnerAddress != caller {
			return domain.ErrNotOwner
		}

		if err := tx.Delete(&record).Error; err != nil {
			return fmt.Errorf("failed to delete supply record: %w", err)
		}

		// Metadata rides along with the registry entry
		if err := tx.Where("item_key = ?", item.String()).
			Delete(&schema.SupplyMetadata{}).Error; err != nil {
			return fmt.Errorf("failed to delete supply metadata: %w", err)
		}

		return nil
	})
}

// IsSupplied reports whether the item has an active supply record
func (s *pgStore) IsSupplied(ctx context.Context, item domain.ItemKey) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.SupplyRecord{}).
		Where("contract_address = ? AND token_number = ?", item.Contract(), item.TokenNumber).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check supply: %w", err)
	}

	return count > 0, nil
}

// TotalSupplySize returns the number of active supply records
func (s *pgStore) TotalSupplySize(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.SupplyRecord{}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count supply records: %w", err)
	}

	return count, nil
}

// GetSupplyMetadata retrieves the description attached to a supply record
func (s *pgStore) GetSupplyMetadata(ctx context.Context, item domain.ItemKey) (*schema.SupplyMetadata, error) {
	var metadata schema.SupplyMetadata
	err := s.db.WithContext(ctx).Where("item_key = ?", item.String()).First(&metadata).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get supply metadata: %w", err)
	}
	return &metadata, nil
}

// SettlePurchase splits the payment across the active supply set and credits owner balances
func (s *pgStore) SettlePurchase(ctx context.Context, amount *big.Int) (*domain.Settlement, error) {
	var settlement *domain.Settlement

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the whole active set: the divisor and the member list must not
		// change between the snapshot read and the balance writes
		var records []schema.SupplyRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Order("id ASC").
			Find(&records).Error; err != nil {
			return fmt.Errorf("failed to lock supply records: %w", err)
		}

		itemOwners := make([]string, len(records))
		for i, record := range records {
			itemOwners[i] = record.OwnerAddress
		}

		var err error
		settlement, err = domain.SplitPayment(amount, itemOwners)
		if err != nil {
			return err
		}

		// Deterministic credit order keeps concurrent settlements deadlock-free
		owners := make([]string, 0, len(settlement.Credits))
		for owner := range settlement.Credits {
			owners = append(owners, owner)
		}
		sort.Strings(owners)

		for _, owner := range owners {
			credit := settlement.Credits[owner]
			if credit.Sign() == 0 {
				continue
			}

			balance := schema.EarningsBalance{
				OwnerAddress: owner,
				Unclaimed:    credit.String(),
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "owner_address"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"unclaimed":  gorm.Expr("earnings_balances.unclaimed + EXCLUDED.unclaimed"),
					"updated_at": gorm.Expr("now()"),
				}),
			}).Create(&balance).Error; err != nil {
				return fmt.Errorf("failed to credit balance for %s: %w", owner, err)
			}
		}

		if settlement.Dust.Sign() > 0 {
			if err := addToCounter(tx, roundingDustKey, settlement.Dust); err != nil {
				return fmt.Errorf("failed to accumulate rounding dust: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return settlement, nil
}

// GetEarnings returns the current unclaimed balance for an account
func (s *pgStore) GetEarnings(ctx context.Context, account string) (*big.Int, error) {
	var balance schema.EarningsBalance
	err := s.db.WithContext(ctx).Where("owner_address = ?", account).First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return big.NewInt(0), nil
		}
		return nil, fmt.Errorf("failed to get earnings balance: %w", err)
	}

	return parseNumeric(balance.Unclaimed)
}

// SettleClaim atomically transfers the balance, appends the claim and outbox
// rows, and zeroes the balance
func (s *pgStore) SettleClaim(ctx context.Context, supplier string, claimedAt time.Time, transfer TransferFunc) (*schema.Claim, error) {
	var claim *schema.Claim

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the balance row: two concurrent claims for the same account
		// serialize here, and the loser sees a zero balance
		var balance schema.EarningsBalance
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_address = ?", supplier).
			First(&balance).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNothingToClaim
			}
			return fmt.Errorf("failed to lock earnings balance: %w", err)
		}

		value, err := parseNumeric(balance.Unclaimed)
		if err != nil {
			return err
		}
		if value.Sign() == 0 {
			return domain.ErrNothingToClaim
		}

		// The external transfer runs inside the transaction; a failure here
		// rolls back the claim record and the balance zeroing together
		txHash, err := transfer(ctx, supplier, value)
		if err != nil {
			return fmt.Errorf("%w: %s", domain.ErrTransferFailed, err)
		}

		claim = &schema.Claim{
			ID:              txHash,
			SupplierAddress: supplier,
			Value:           value.String(),
			ClaimedAt:       claimedAt,
		}
		if err := tx.Create(claim).Error; err != nil {
			return fmt.Errorf("failed to create claim: %w", err)
		}

		outbox := schema.ClaimOutbox{
			ID:              ulid.Make().String(),
			ClaimID:         claim.ID,
			SupplierAddress: supplier,
			Value:           claim.Value,
			ClaimedAt:       claimedAt,
		}
		if err := tx.Create(&outbox).Error; err != nil {
			return fmt.Errorf("failed to create claim outbox row: %w", err)
		}

		if err := tx.Model(&balance).
			Updates(map[string]interface{}{"unclaimed": "0"}).Error; err != nil {
			return fmt.Errorf("failed to zero earnings balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return claim, nil
}

// GetClaims returns an account's claims, most recent first
func (s *pgStore) GetClaims(ctx context.Context, supplier string) ([]schema.Claim, error) {
	var claims []schema.Claim
	err := s.db.WithContext(ctx).
		Where("supplier_address = ?", supplier).
		Order("claimed_at DESC, id DESC").
		Find(&claims).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get claims: %w", err)
	}

	return claims, nil
}

// GetRoundingDust returns the accumulated undistributed remainder
func (s *pgStore) GetRoundingDust(ctx context.Context) (*big.Int, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", roundingDustKey).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return big.NewInt(0), nil
		}
		return nil, fmt.Errorf("failed to get rounding dust: %w", err)
	}

	return parseNumeric(kv.Value)
}

// GetUnpublishedClaimEvents retrieves outbox rows awaiting delivery, oldest first
func (s *pgStore) GetUnpublishedClaimEvents(ctx context.Context, limit int) ([]schema.ClaimOutbox, error) {
	var events []schema.ClaimOutbox
	err := s.db.WithContext(ctx).
		Where("published = ?", false).
		Order("id ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get unpublished claim events: %w", err)
	}

	return events, nil
}

// MarkClaimEventPublished marks an outbox row as delivered
func (s *pgStore) MarkClaimEventPublished(ctx context.Context, id string, publishedAt time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&schema.ClaimOutbox{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"published":    true,
			"published_at": publishedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark claim event published: %w", err)
	}

	return nil
}

// addToCounter adds delta to a numeric key_value_store counter within tx
func addToCounter(tx *gorm.DB, key string, delta *big.Int) error {
	var kv schema.KeyValueStore
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("key = ?", key).
		First(&kv).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to lock counter %s: %w", key, err)
	}

	total := new(big.Int).Set(delta)
	if err == nil {
		current, perr := parseNumeric(kv.Value)
		if perr != nil {
			return perr
		}
		total.Add(total, current)
	}

	kv.Key = key
	kv.Value = total.String()
	if err := tx.Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to save counter %s: %w", key, err)
	}

	return nil
}

// parseNumeric parses a numeric(78,0) column value into a big.Int
func parseNumeric(s string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("malformed numeric value: %q", s)
	}
	return value, nil
}
