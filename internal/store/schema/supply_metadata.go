package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SupplyMetadata represents the supply_metadata table - free-text descriptions
// attached to supply records. Purely descriptive: not part of the accounting
// invariants, removed together with the supply record on revoke.
type SupplyMetadata struct {
	// ItemKey is the composite key "{contractAddress}_{tokenNumber}"
	ItemKey string `gorm:"column:item_key;primaryKey;type:text"`
	// Description is the supplier-provided dataset description
	Description string `gorm:"column:description;not null;type:text"`
	// Attributes holds supplier-provided structured metadata (schema-free)
	Attributes datatypes.JSON `gorm:"column:attributes;type:jsonb"`
	// CreatedAt is the timestamp when this metadata was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this metadata was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the SupplyMetadata model
func (SupplyMetadata) TableName() string {
	return "supply_metadata"
}
