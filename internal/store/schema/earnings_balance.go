package schema

import "time"

// EarningsBalance represents the earnings_balances table - per-account unclaimed earnings.
// Increased only by purchase settlement, zeroed only by a successful claim.
type EarningsBalance struct {
	// OwnerAddress is the earning account (lowercase hex)
	OwnerAddress string `gorm:"column:owner_address;primaryKey;type:text"`
	// Unclaimed is the accumulated unclaimed amount in base units
	// (stored as string to support up to 78 digits for blockchain compatibility)
	Unclaimed string `gorm:"column:unclaimed;not null;type:numeric(78,0)"`
	// CreatedAt is the timestamp when this balance was first credited
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this balance was last changed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EarningsBalance model
func (EarningsBalance) TableName() string {
	return "earnings_balances"
}
