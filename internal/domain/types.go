package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// tokenNumberRegex matches unsigned decimal token numbers; 78 digits covers uint256
var tokenNumberRegex = regexp.MustCompile(`^[0-9]{1,78}$`)

// ItemKey identifies a supplied dataset item by its source NFT contract and token number
type ItemKey struct {
	ContractAddress common.Address
	TokenNumber     string
}

// NewItemKey creates an ItemKey from a hex contract address and a decimal token number
func NewItemKey(contractAddress string, tokenNumber string) (ItemKey, error) {
	if !common.IsHexAddress(contractAddress) {
		return ItemKey{}, fmt.Errorf("invalid contract address: %s", contractAddress)
	}
	if !validTokenNumber(tokenNumber) {
		return ItemKey{}, fmt.Errorf("invalid token number: %s", tokenNumber)
	}

	return ItemKey{
		ContractAddress: common.HexToAddress(contractAddress),
		TokenNumber:     tokenNumber,
	}, nil
}

// Contract returns the normalized (lowercase hex) contract address
func (k ItemKey) Contract() string {
	return NormalizeAddress(k.ContractAddress)
}

// String returns the metadata-store key format: "{contractAddress}_{tokenNumber}"
func (k ItemKey) String() string {
	return fmt.Sprintf("%s_%s", k.Contract(), k.TokenNumber)
}

// Valid reports whether the item key has a well-formed token number
func (k ItemKey) Valid() bool {
	return validTokenNumber(k.TokenNumber)
}

func validTokenNumber(tokenNumber string) bool {
	// canonical zero is "0"; anything else must not have leading zeros
	if len(tokenNumber) > 1 && tokenNumber[0] == '0' {
		return false
	}
	return tokenNumberRegex.MatchString(tokenNumber)
}

// NormalizeAddress returns the canonical storage form of an address (lowercase hex).
// All owner/supplier identity comparisons go through this form.
func NormalizeAddress(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}

// ParseAmount parses a payment amount given in base units (wei) as a decimal string.
// Returns ErrInvalidAmount for non-numeric, zero or negative values.
func ParseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a base-10 integer", ErrInvalidAmount, s)
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	return amount, nil
}

// ClaimedEvent is the normalized event emitted once per successful claim.
// This is the standard format published to NATS and consumed by the claims indexer.
type ClaimedEvent struct {
	Supplier      string    `json:"supplier"`       // claiming address (lowercase hex)
	Timestamp     time.Time `json:"timestamp"`      // settlement time of the claim
	Value         string    `json:"value"`          // amount transferred, base units
	TransactionID string    `json:"transaction_id"` // transfer transaction hash, doubles as claim id
}

// Valid reports whether the event carries everything the indexer needs
func (e *ClaimedEvent) Valid() bool {
	if !common.IsHexAddress(e.Supplier) {
		return false
	}
	if e.TransactionID == "" || e.Timestamp.IsZero() {
		return false
	}
	value, ok := new(big.Int).SetString(e.Value, 10)
	return ok && value.Sign() > 0
}
