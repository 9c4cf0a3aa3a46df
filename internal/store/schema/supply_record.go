package schema

import "time"

// SupplyRecord represents the supply_records table - one row per actively supplied item.
// A row exists only while the supply is active; revoking deletes it, so the table's
// row count is the divisor used for purchase settlement.
type SupplyRecord struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the source NFT contract (lowercase hex)
	ContractAddress string `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_supply_contract_token,priority:1"`
	// TokenNumber is the token id within the contract (decimal string, supports uint256)
	TokenNumber string `gorm:"column:token_number;not null;type:text;uniqueIndex:idx_supply_contract_token,priority:2"`
	// OwnerAddress is the account that registered the supply (lowercase hex)
	OwnerAddress string `gorm:"column:owner_address;not null;type:text;index:idx_supply_owner"`
	// CreatedAt is the timestamp when this supply was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the SupplyRecord model
func (SupplyRecord) TableName() string {
	return "supply_records"
}
