package rest

import (
	"encoding/json"
	"time"
)

// MakeSupplyRequest is the payload for registering a supply
type MakeSupplyRequest struct {
	ContractAddress string `json:"contract_address" binding:"required"`
	TokenNumber     string `json:"token_number" binding:"required"`
	Description     string `json:"description"`
	// Attributes is optional schema-free metadata stored with the supply
	Attributes map[string]interface{} `json:"attributes"`
}

// SupplyResponse describes an item's supply status
type SupplyResponse struct {
	ContractAddress string          `json:"contract_address"`
	TokenNumber     string          `json:"token_number"`
	Supplied        bool            `json:"supplied"`
	Description     string          `json:"description,omitempty"`
	Attributes      json.RawMessage `json:"attributes,omitempty"`
}

// SupplyStatsResponse reports the active supply size
type SupplyStatsResponse struct {
	TotalSupplySize int64 `json:"total_supply_size"`
}

// PurchaseRequest is the payload for settling a purchase
type PurchaseRequest struct {
	// Amount is the payment in base units, as a decimal string
	Amount string `json:"amount" binding:"required"`
}

// PurchaseResponse reports how a settled payment was distributed
type PurchaseResponse struct {
	Amount       string            `json:"amount"`
	SharePerItem string            `json:"share_per_item"`
	Credits      map[string]string `json:"credits"`
	Dust         string            `json:"dust"`
}

// EarningsResponse reports an account's unclaimed balance
type EarningsResponse struct {
	Address   string `json:"address"`
	Unclaimed string `json:"unclaimed"`
}

// ClaimResponse describes a single settled claim
type ClaimResponse struct {
	ID        string    `json:"id"`
	Supplier  string    `json:"supplier"`
	Value     string    `json:"value"`
	ClaimedAt time.Time `json:"claimed_at"`
}

// ClaimsResponse lists an account's claims
type ClaimsResponse struct {
	Claims []ClaimResponse `json:"claims"`
}

// DustResponse reports the retained settlement remainder
type DustResponse struct {
	Dust string `json:"dust"`
}
