package schema

import "time"

// ClaimOutbox represents the claim_outbox table - outbox rows for Claimed events.
// A row is written in the same transaction as its claim so the indexer feed can
// never diverge from ledger state; the relay publishes rows and marks them.
type ClaimOutbox struct {
	// ID is a ULID assigned at claim time; lexicographic order matches creation order
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ClaimID references the claim this event describes (transfer tx hash)
	ClaimID string `gorm:"column:claim_id;not null;type:text"`
	// SupplierAddress is the claiming account (lowercase hex)
	SupplierAddress string `gorm:"column:supplier_address;not null;type:text"`
	// Value is the claimed amount in base units
	Value string `gorm:"column:value;not null;type:numeric(78,0)"`
	// ClaimedAt is the settlement timestamp of the claim
	ClaimedAt time.Time `gorm:"column:claimed_at;not null;type:timestamptz"`
	// Published reports whether the relay has delivered this event
	Published bool `gorm:"column:published;not null;default:false;index:idx_claim_outbox_published"`
	// PublishedAt is the delivery timestamp (nil until published)
	PublishedAt *time.Time `gorm:"column:published_at;type:timestamptz"`
	// CreatedAt is the timestamp when this row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ClaimOutbox model
func (ClaimOutbox) TableName() string {
	return "claim_outbox"
}
