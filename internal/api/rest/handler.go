package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/supplier-ledger/internal/api/middleware"
	"github.com/feral-file/supplier-ledger/internal/domain"
	"github.com/feral-file/supplier-ledger/internal/ledger"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// MakeSupply registers an item for the authenticated caller
	// POST /api/v1/supplies
	MakeSupply(c *gin.Context)

	// RevokeSupply removes the caller's supply record for an item
	// DELETE /api/v1/supplies/:contract/:token_number
	RevokeSupply(c *gin.Context)

	// GetSupply reports whether an item is actively supplied
	// GET /api/v1/supplies/:contract/:token_number
	GetSupply(c *gin.Context)

	// GetSupplyStats reports the total active supply size
	// GET /api/v1/supplies/stats
	GetSupplyStats(c *gin.Context)

	// PurchaseData settles a purchase across the active supply set
	// POST /api/v1/purchases
	PurchaseData(c *gin.Context)

	// ClaimEarnings withdraws the caller's full unclaimed balance
	// POST /api/v1/claims
	ClaimEarnings(c *gin.Context)

	// GetEarnings returns an account's unclaimed balance
	// GET /api/v1/accounts/:address/earnings
	GetEarnings(c *gin.Context)

	// GetClaims returns an account's claim history, most recent first
	// GET /api/v1/accounts/:address/claims
	GetClaims(c *gin.Context)

	// GetRoundingDust reports the retained settlement remainder (requires API key)
	// GET /api/v1/ledger/dust
	GetRoundingDust(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	ledger ledger.Ledger
}

// NewHandler creates a new REST API handler
func NewHandler(l ledger.Ledger) Handler {
	return &handler{
		ledger: l,
	}
}

// MakeSupply registers an item for the authenticated caller
func (h *handler) MakeSupply(c *gin.Context) {
	caller, ok := middleware.CallerAddress(c)
	if !ok {
		respondBadRequest(c, "Caller address is missing")
		return
	}

	var req MakeSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	item, err := domain.NewItemKey(req.ContractAddress, req.TokenNumber)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var attributes datatypes.JSON
	if req.Attributes != nil {
		data, err := json.Marshal(req.Attributes)
		if err != nil {
			respondBadRequest(c, "Invalid attributes", err.Error())
			return
		}
		attributes = datatypes.JSON(data)
	}

	if err := h.ledger.MakeSupply(c.Request.Context(), item, caller, req.Description, attributes); err != nil {
		respondDomainError(c, err, "Failed to make supply")
		return
	}

	c.JSON(http.StatusCreated, SupplyResponse{
		ContractAddress: item.Contract(),
		TokenNumber:     item.TokenNumber,
		Supplied:        true,
		Description:     req.Description,
		Attributes:      json.RawMessage(attributes),
	})
}

// RevokeSupply removes the caller's supply record for an item
func (h *handler) RevokeSupply(c *gin.Context) {
	caller, ok := middleware.CallerAddress(c)
	if !ok {
		respondBadRequest(c, "Caller address is missing")
		return
	}

	item, err := domain.NewItemKey(c.Param("contract"), c.Param("token_number"))
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.ledger.RevokeSupply(c.Request.Context(), item, caller); err != nil {
		respondDomainError(c, err, "Failed to revoke supply")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSupply reports whether an item is actively supplied
func (h *handler) GetSupply(c *gin.Context) {
	item, err := domain.NewItemKey(c.Param("contract"), c.Param("token_number"))
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	supplied, err := h.ledger.IsSupplied(c.Request.Context(), item)
	if err != nil {
		respondInternalError(c, err, "Failed to get supply status")
		return
	}

	response := SupplyResponse{
		ContractAddress: item.Contract(),
		TokenNumber:     item.TokenNumber,
		Supplied:        supplied,
	}

	if supplied {
		metadata, err := h.ledger.GetSupplyInfo(c.Request.Context(), item)
		if err != nil {
			respondInternalError(c, err, "Failed to get supply metadata")
			return
		}
		if metadata != nil {
			response.Description = metadata.Description
			response.Attributes = json.RawMessage(metadata.Attributes)
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetSupplyStats reports the total active supply size
func (h *handler) GetSupplyStats(c *gin.Context) {
	size, err := h.ledger.TotalSupplySize(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to get supply stats")
		return
	}

	c.JSON(http.StatusOK, SupplyStatsResponse{
		TotalSupplySize: size,
	})
}

// PurchaseData settles a purchase across the active supply set
func (h *handler) PurchaseData(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	settlement, err := h.ledger.PurchaseData(c.Request.Context(), amount)
	if err != nil {
		respondDomainError(c, err, "Failed to settle purchase")
		return
	}

	credits := make(map[string]string, len(settlement.Credits))
	for owner, credit := range settlement.Credits {
		credits[owner] = credit.String()
	}

	c.JSON(http.StatusOK, PurchaseResponse{
		Amount:       amount.String(),
		SharePerItem: settlement.Share.String(),
		Credits:      credits,
		Dust:         settlement.Dust.String(),
	})
}

// ClaimEarnings withdraws the caller's full unclaimed balance
func (h *handler) ClaimEarnings(c *gin.Context) {
	caller, ok := middleware.CallerAddress(c)
	if !ok {
		respondBadRequest(c, "Caller address is missing")
		return
	}

	claim, err := h.ledger.ClaimEarnings(c.Request.Context(), caller)
	if err != nil {
		respondDomainError(c, err, "Failed to claim earnings")
		return
	}

	c.JSON(http.StatusOK, ClaimResponse{
		ID:        claim.ID,
		Supplier:  claim.SupplierAddress,
		Value:     claim.Value,
		ClaimedAt: claim.ClaimedAt,
	})
}

// GetEarnings returns an account's unclaimed balance
func (h *handler) GetEarnings(c *gin.Context) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		respondValidationError(c, "invalid account address")
		return
	}

	earnings, err := h.ledger.GetEarnings(c.Request.Context(), common.HexToAddress(address))
	if err != nil {
		respondInternalError(c, err, "Failed to get earnings")
		return
	}

	c.JSON(http.StatusOK, EarningsResponse{
		Address:   domain.NormalizeAddress(common.HexToAddress(address)),
		Unclaimed: earnings.String(),
	})
}

// GetClaims returns an account's claim history, most recent first
func (h *handler) GetClaims(c *gin.Context) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		respondValidationError(c, "invalid account address")
		return
	}

	claims, err := h.ledger.GetClaims(c.Request.Context(), common.HexToAddress(address))
	if err != nil {
		respondInternalError(c, err, "Failed to get claims")
		return
	}

	response := ClaimsResponse{
		Claims: make([]ClaimResponse, 0, len(claims)),
	}
	for _, claim := range claims {
		response.Claims = append(response.Claims, ClaimResponse{
			ID:        claim.ID,
			Supplier:  claim.SupplierAddress,
			Value:     claim.Value,
			ClaimedAt: claim.ClaimedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetRoundingDust reports the retained settlement remainder
func (h *handler) GetRoundingDust(c *gin.Context) {
	dust, err := h.ledger.GetRoundingDust(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to get rounding dust")
		return
	}

	c.JSON(http.StatusOK, DustResponse{
		Dust: dust.String(),
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
