package schema

import "time"

// Claim represents the claims table - append-only log of settled claims.
// Rows are immutable once created; exactly one row per successful claim call.
type Claim struct {
	// ID is the transfer transaction hash, which doubles as the claim identifier
	ID string `gorm:"column:id;primaryKey;type:text"`
	// SupplierAddress is the claiming account (lowercase hex)
	SupplierAddress string `gorm:"column:supplier_address;not null;type:text;index:idx_claims_supplier"`
	// Value is the amount transferred in base units; equals the unclaimed balance at claim time
	Value string `gorm:"column:value;not null;type:numeric(78,0)"`
	// ClaimedAt is the settlement timestamp assigned when the claim executed
	ClaimedAt time.Time `gorm:"column:claimed_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Claim model
func (Claim) TableName() string {
	return "claims"
}
