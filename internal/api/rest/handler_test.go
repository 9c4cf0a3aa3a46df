package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/supplier-ledger/internal/api/middleware"
	"github.com/feral-file/supplier-ledger/internal/domain"
	"github.com/feral-file/supplier-ledger/internal/logger"
	"github.com/feral-file/supplier-ledger/internal/mocks"
	"github.com/feral-file/supplier-ledger/internal/store/schema"
)

const (
	testContract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	testCaller   = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func init() {
	// Initialize logger for testing
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})
}

// newTestRouter builds a router with the caller address injected directly,
// bypassing JWT validation which is covered by the middleware tests
func newTestRouter(t *testing.T) (*mocks.MockLedger, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLedger := mocks.NewMockLedger(ctrl)
	h := NewHandler(mockLedger)

	router := gin.New()
	asCaller := func(c *gin.Context) {
		c.Set(middleware.CALLER_ADDRESS_KEY, testCaller)
	}

	router.GET("/health", h.HealthCheck)
	v1 := router.Group("/api/v1")
	{
		v1.POST("/supplies", asCaller, h.MakeSupply)
		v1.DELETE("/supplies/:contract/:token_number", asCaller, h.RevokeSupply)
		v1.GET("/supplies/stats", h.GetSupplyStats)
		v1.GET("/supplies/:contract/:token_number", h.GetSupply)
		v1.POST("/purchases", asCaller, h.PurchaseData)
		v1.POST("/claims", asCaller, h.ClaimEarnings)
		v1.GET("/accounts/:address/earnings", h.GetEarnings)
		v1.GET("/accounts/:address/claims", h.GetClaims)
		v1.GET("/ledger/dust", h.GetRoundingDust)
	}

	return mockLedger, router
}

func performJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestMakeSupply(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	item, err := domain.NewItemKey(testContract, "42")
	require.NoError(t, err)

	mockLedger.EXPECT().
		MakeSupply(gomock.Any(), item, common.HexToAddress(testCaller), "weather data", gomock.Any()).
		Return(nil)

	w := performJSON(router, http.MethodPost, "/api/v1/supplies", MakeSupplyRequest{
		ContractAddress: testContract,
		TokenNumber:     "42",
		Description:     "weather data",
		Attributes:      map[string]interface{}{"format": "csv"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody[SupplyResponse](t, w)
	assert.Equal(t, item.Contract(), resp.ContractAddress)
	assert.Equal(t, "42", resp.TokenNumber)
	assert.True(t, resp.Supplied)
	assert.Equal(t, "weather data", resp.Description)
}

func TestMakeSupply_InvalidTokenNumber(t *testing.T) {
	_, router := newTestRouter(t)

	w := performJSON(router, http.MethodPost, "/api/v1/supplies", MakeSupplyRequest{
		ContractAddress: testContract,
		TokenNumber:     "not-a-number",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMakeSupply_SuppliedByOther(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	mockLedger.EXPECT().
		MakeSupply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrAlreadySuppliedByOther)

	w := performJSON(router, http.MethodPost, "/api/v1/supplies", MakeSupplyRequest{
		ContractAddress: testContract,
		TokenNumber:     "42",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRevokeSupply(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	item, err := domain.NewItemKey(testContract, "42")
	require.NoError(t, err)

	mockLedger.EXPECT().
		RevokeSupply(gomock.Any(), item, common.HexToAddress(testCaller)).
		Return(nil)

	w := performJSON(router, http.MethodDelete, "/api/v1/supplies/"+testContract+"/42", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRevokeSupply_NotOwner(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	mockLedger.EXPECT().
		RevokeSupply(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrNotOwner)

	w := performJSON(router, http.MethodDelete, "/api/v1/supplies/"+testContract+"/42", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRevokeSupply_NotFound(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	mockLedger.EXPECT().
		RevokeSupply(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrNotFound)

	w := performJSON(router, http.MethodDelete, "/api/v1/supplies/"+testContract+"/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSupply(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	item, err := domain.NewItemKey(testContract, "42")
	require.NoError(t, err)

	mockLedger.EXPECT().IsSupplied(gomock.Any(), item).Return(true, nil)
	mockLedger.EXPECT().
		GetSupplyInfo(gomock.Any(), item).
		Return(&schema.SupplyMetadata{
			ItemKey:     item.String(),
			Description: "weather data",
			Attributes:  datatypes.JSON(`{"format":"csv"}`),
		}, nil)

	w := performJSON(router, http.MethodGet, "/api/v1/supplies/"+testContract+"/42", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[SupplyResponse](t, w)
	assert.True(t, resp.Supplied)
	assert.Equal(t, "weather data", resp.Description)
	assert.JSONEq(t, `{"format":"csv"}`, string(resp.Attributes))
}

func TestGetSupply_NotSupplied(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	mockLedger.EXPECT().IsSupplied(gomock.Any(), gomock.Any()).Return(false, nil)

	w := performJSON(router, http.MethodGet, "/api/v1/supplies/"+testContract+"/42", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[SupplyResponse](t, w)
	assert.False(t, resp.Supplied)
	assert.Empty(t, resp.Description)
}

func TestGetSupplyStats(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	mockLedger.EXPECT().TotalSupplySize(gomock.Any()).Return(int64(7), nil)

	w := performJSON(router, http.MethodGet, "/api/v1/supplies/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[SupplyStatsResponse](t, w)
	assert.Equal(t, int64(7), resp.TotalSupplySize)
}

func TestPurchaseData(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	owner := "0x5fbdb2315678afecb367f032d93f642f64180aa3"
	mockLedger.EXPECT().
		PurchaseData(gomock.Any(), big.NewInt(100)).
		Return(&domain.Settlement{
			Share:   big.NewInt(33),
			Credits: map[string]*big.Int{owner: big.NewInt(99)},
			Dust:    big.NewInt(1),
		}, nil)

	w := performJSON(router, http.MethodPost, "/api/v1/purchases", PurchaseRequest{Amount: "100"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[PurchaseResponse](t, w)
	assert.Equal(t, "100", resp.Amount)
	assert.Equal(t, "33", resp.SharePerItem)
	assert.Equal(t, "1", resp.Dust)
	assert.Equal(t, "99", resp.Credits[owner])
}

func TestPurchaseData_InvalidAmount(t *testing.T) {
	_, router := newTestRouter(t)

	w := performJSON(router, http.MethodPost, "/api/v1/purchases", PurchaseRequest{Amount: "-5"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPurchaseData_NoSupply(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	mockLedger.EXPECT().
		PurchaseData(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrNoSupplyAvailable)

	w := performJSON(router, http.MethodPost, "/api/v1/purchases", PurchaseRequest{Amount: "100"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestClaimEarnings(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	claimedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockLedger.EXPECT().
		ClaimEarnings(gomock.Any(), common.HexToAddress(testCaller)).
		Return(&schema.Claim{
			ID:              "0xtx1",
			SupplierAddress: domain.NormalizeAddress(common.HexToAddress(testCaller)),
			Value:           "500",
			ClaimedAt:       claimedAt,
		}, nil)

	w := performJSON(router, http.MethodPost, "/api/v1/claims", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[ClaimResponse](t, w)
	assert.Equal(t, "0xtx1", resp.ID)
	assert.Equal(t, "500", resp.Value)
	assert.True(t, claimedAt.Equal(resp.ClaimedAt))
}

func TestClaimEarnings_NothingToClaim(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	mockLedger.EXPECT().
		ClaimEarnings(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrNothingToClaim)

	w := performJSON(router, http.MethodPost, "/api/v1/claims", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestClaimEarnings_TransferFailed(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	mockLedger.EXPECT().
		ClaimEarnings(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(domain.ErrTransferFailed, errors.New("rpc unreachable")))

	w := performJSON(router, http.MethodPost, "/api/v1/claims", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetEarnings(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	mockLedger.EXPECT().
		GetEarnings(gomock.Any(), common.HexToAddress(testCaller)).
		Return(big.NewInt(1234), nil)

	w := performJSON(router, http.MethodGet, "/api/v1/accounts/"+testCaller+"/earnings", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[EarningsResponse](t, w)
	assert.Equal(t, domain.NormalizeAddress(common.HexToAddress(testCaller)), resp.Address)
	assert.Equal(t, "1234", resp.Unclaimed)
}

func TestGetEarnings_InvalidAddress(t *testing.T) {
	_, router := newTestRouter(t)

	w := performJSON(router, http.MethodGet, "/api/v1/accounts/nobody/earnings", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetClaims(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	claimedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	supplier := domain.NormalizeAddress(common.HexToAddress(testCaller))
	stored := []schema.Claim{
		{ID: "0xtx2", SupplierAddress: supplier, Value: "200", ClaimedAt: claimedAt},
		{ID: "0xtx1", SupplierAddress: supplier, Value: "100", ClaimedAt: claimedAt.Add(-time.Hour)},
	}
	mockLedger.EXPECT().
		GetClaims(gomock.Any(), common.HexToAddress(testCaller)).
		Return(stored, nil)

	w := performJSON(router, http.MethodGet, "/api/v1/accounts/"+testCaller+"/claims", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[ClaimsResponse](t, w)
	require.Len(t, resp.Claims, 2)
	assert.Equal(t, "0xtx2", resp.Claims[0].ID)
	assert.Equal(t, "0xtx1", resp.Claims[1].ID)
}

func TestGetRoundingDust(t *testing.T) {
	mockLedger, router := newTestRouter(t)

	mockLedger.EXPECT().GetRoundingDust(gomock.Any()).Return(big.NewInt(3), nil)

	w := performJSON(router, http.MethodGet, "/api/v1/ledger/dust", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[DustResponse](t, w)
	assert.Equal(t, "3", resp.Dust)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestRouter(t)

	w := performJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
