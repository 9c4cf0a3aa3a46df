package store

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/supplier-ledger/internal/domain"
	"github.com/feral-file/supplier-ledger/internal/store/schema"
)

const (
	ownerA = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	ownerB = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	ownerC = "0xcccccccccccccccccccccccccccccccccccccccc"
)

func mustItemKey(t *testing.T, contract, tokenNumber string) domain.ItemKey {
	t.Helper()
	item, err := domain.NewItemKey(contract, tokenNumber)
	require.NoError(t, err)
	return item
}

// okTransfer is a transfer stub that always succeeds with the given hash
func okTransfer(hash string) TransferFunc {
	return func(ctx context.Context, to string, amount *big.Int) (string, error) {
		return hash, nil
	}
}

func TestRegisterSupply(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()
	item := mustItemKey(t, ownerC, "1")

	attributes := datatypes.JSON(`{"format": "csv", "rows": 1200}`)
	require.NoError(t, st.RegisterSupply(ctx, item, ownerA, "weather data", attributes))

	supplied, err := st.IsSupplied(ctx, item)
	require.NoError(t, err)
	assert.True(t, supplied)

	metadata, err := st.GetSupplyMetadata(ctx, item)
	require.NoError(t, err)
	require.NotNil(t, metadata)
	assert.Equal(t, "weather data", metadata.Description)
	assert.JSONEq(t, string(attributes), string(metadata.Attributes))
}

func TestRegisterSupply_IdempotentForSameOwner(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()
	item := mustItemKey(t, ownerC, "1")

	require.NoError(t, st.RegisterSupply(ctx, item, ownerA, "v1", nil))
	require.NoError(t, st.RegisterSupply(ctx, item, ownerA, "v2", nil))

	size, err := st.TotalSupplySize(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)

	// re-registering refreshes the description
	metadata, err := st.GetSupplyMetadata(ctx, item)
	require.NoError(t, err)
	require.NotNil(t, metadata)
	assert.Equal(t, "v2", metadata.Description)
}

func TestRegisterSupply_AlreadySuppliedByOther(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()
	item := mustItemKey(t, ownerC, "1")

	require.NoError(t, st.RegisterSupply(ctx, item, ownerA, "", nil))

	err := st.RegisterSupply(ctx, item, ownerB, "", nil)
	assert.ErrorIs(t, err, domain.ErrAlreadySuppliedByOther)

	size, err := st.TotalSupplySize(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)
}

func TestRegisterSupply_ConcurrentInsertConflict(t *testing.T) {
	ctx := context.Background()
	item := mustItemKey(t, ownerC, "77")

	// Runs against the shared database on two connections so the two writers
	// actually interleave; the per-test rollback harness cannot express that
	tx := testDB.Begin()
	require.NoError(t, tx.Error)
	committed := false
	t.Cleanup(func() {
		if !committed {
			tx.Rollback()
		}
		testDB.Where("contract_address = ? AND token_number = ?", item.Contract(), item.TokenNumber).
			Delete(&schema.SupplyRecord{})
		testDB.Where("item_key = ?", item.String()).Delete(&schema.SupplyMetadata{})
	})

	// First writer inserts but holds its transaction open
	require.NoError(t, NewPGStore(tx).RegisterSupply(ctx, item, ownerA, "", nil))

	// Second writer races in: its lookup sees no row, and its insert queues
	// behind the uncommitted one on the unique index
	errCh := make(chan error, 1)
	go func() {
		errCh <- NewPGStore(testDB).RegisterSupply(ctx, item, ownerB, "", nil)
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, tx.Commit().Error)
	committed = true

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, domain.ErrAlreadySuppliedByOther)
	case <-time.After(5 * time.Second):
		t.Fatal("racing register did not return")
	}

	var record schema.SupplyRecord
	require.NoError(t, testDB.
		Where("contract_address = ? AND token_number = ?", item.Contract(), item.TokenNumber).
		First(&record).Error)
	assert.Equal(t, ownerA, record.OwnerAddress)
}

func TestRevokeSupply(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()
	item := mustItemKey(t, ownerC, "1")

	require.NoError(t, st.RegisterSupply(ctx, item, ownerA, "gone soon", nil))
	require.NoError(t, st.RevokeSupply(ctx, item, ownerA))

	supplied, err := st.IsSupplied(ctx, item)
	require.NoError(t, err)
	assert.False(t, supplied)

	metadata, err := st.GetSupplyMetadata(ctx, item)
	require.NoError(t, err)
	assert.Nil(t, metadata)

	// revoked items can be supplied again, by anyone
	require.NoError(t, st.RegisterSupply(ctx, item, ownerB, "", nil))
}

func TestRevokeSupply_NotFound(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()
	item := mustItemKey(t, ownerC, "404")

	err := st.RevokeSupply(ctx, item, ownerA)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRevokeSupply_NotOwner(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()
	item := mustItemKey(t, ownerC, "1")

	require.NoError(t, st.RegisterSupply(ctx, item, ownerA, "", nil))

	err := st.RevokeSupply(ctx, item, ownerB)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	supplied, err := st.IsSupplied(ctx, item)
	require.NoError(t, err)
	assert.True(t, supplied)
}

func TestSettlePurchase(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	// A supplies two items, B supplies one
	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "1"), ownerA, "", nil))
	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "2"), ownerA, "", nil))
	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "3"), ownerB, "", nil))

	settlement, err := st.SettlePurchase(ctx, big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, "33", settlement.Share.String())
	assert.Equal(t, "1", settlement.Dust.String())

	earningsA, err := st.GetEarnings(ctx, ownerA)
	require.NoError(t, err)
	assert.Equal(t, "66", earningsA.String())

	earningsB, err := st.GetEarnings(ctx, ownerB)
	require.NoError(t, err)
	assert.Equal(t, "33", earningsB.String())

	dust, err := st.GetRoundingDust(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", dust.String())
}

func TestSettlePurchase_AccumulatesAcrossPurchases(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "1"), ownerA, "", nil))
	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "2"), ownerB, "", nil))

	_, err := st.SettlePurchase(ctx, big.NewInt(101))
	require.NoError(t, err)
	_, err = st.SettlePurchase(ctx, big.NewInt(101))
	require.NoError(t, err)

	earningsA, err := st.GetEarnings(ctx, ownerA)
	require.NoError(t, err)
	assert.Equal(t, "100", earningsA.String())

	dust, err := st.GetRoundingDust(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", dust.String())
}

func TestSettlePurchase_RevokedItemExcluded(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "1"), ownerA, "", nil))
	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "2"), ownerA, "", nil))
	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "3"), ownerB, "", nil))

	// three items: A takes two shares of 30, B one
	_, err := st.SettlePurchase(ctx, big.NewInt(90))
	require.NoError(t, err)

	require.NoError(t, st.RevokeSupply(ctx, mustItemKey(t, ownerC, "2"), ownerA))

	// the next purchase divides by the remaining two items only
	settlement, err := st.SettlePurchase(ctx, big.NewInt(90))
	require.NoError(t, err)
	assert.Equal(t, "45", settlement.Share.String())

	// A keeps the earlier two shares but earns a single share now
	earningsA, err := st.GetEarnings(ctx, ownerA)
	require.NoError(t, err)
	assert.Equal(t, "105", earningsA.String())

	earningsB, err := st.GetEarnings(ctx, ownerB)
	require.NoError(t, err)
	assert.Equal(t, "75", earningsB.String())
}

func TestSettlePurchase_NoSupply(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	_, err := st.SettlePurchase(ctx, big.NewInt(100))
	assert.ErrorIs(t, err, domain.ErrNoSupplyAvailable)
}

func TestSettlePurchase_AllDust(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "1"), ownerA, "", nil))
	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "2"), ownerB, "", nil))
	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "3"), ownerB, "", nil))

	// payment below the item count floors every share to zero
	settlement, err := st.SettlePurchase(ctx, big.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, "0", settlement.Share.String())

	earningsA, err := st.GetEarnings(ctx, ownerA)
	require.NoError(t, err)
	assert.Equal(t, "0", earningsA.String())

	dust, err := st.GetRoundingDust(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", dust.String())
}

func TestGetEarnings_UnknownAccount(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	earnings, err := st.GetEarnings(ctx, ownerA)
	require.NoError(t, err)
	assert.Equal(t, "0", earnings.String())
}

func TestSettleClaim(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()
	claimedAt := time.Now().UTC().Truncate(time.Microsecond)

	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "1"), ownerA, "", nil))
	_, err := st.SettlePurchase(ctx, big.NewInt(500))
	require.NoError(t, err)

	claim, err := st.SettleClaim(ctx, ownerA, claimedAt, okTransfer("0xtx1"))
	require.NoError(t, err)
	require.NotNil(t, claim)
	assert.Equal(t, "0xtx1", claim.ID)
	assert.Equal(t, ownerA, claim.SupplierAddress)
	assert.Equal(t, "500", claim.Value)

	// balance is zeroed, not deleted
	earnings, err := st.GetEarnings(ctx, ownerA)
	require.NoError(t, err)
	assert.Equal(t, "0", earnings.String())

	// the outbox row is written in the same transaction
	events, err := st.GetUnpublishedClaimEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "0xtx1", events[0].ClaimID)
	assert.Equal(t, ownerA, events[0].SupplierAddress)
	assert.Equal(t, "500", events[0].Value)
}

func TestSettleClaim_NothingToClaim(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	// no balance row at all
	_, err := st.SettleClaim(ctx, ownerA, time.Now(), okTransfer("0xtx1"))
	assert.ErrorIs(t, err, domain.ErrNothingToClaim)

	// a drained balance rejects the same way
	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "1"), ownerA, "", nil))
	_, err = st.SettlePurchase(ctx, big.NewInt(100))
	require.NoError(t, err)

	_, err = st.SettleClaim(ctx, ownerA, time.Now(), okTransfer("0xtx1"))
	require.NoError(t, err)

	_, err = st.SettleClaim(ctx, ownerA, time.Now(), okTransfer("0xtx2"))
	assert.ErrorIs(t, err, domain.ErrNothingToClaim)
}

func TestSettleClaim_TransferFailureRollsBack(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "1"), ownerA, "", nil))
	_, err := st.SettlePurchase(ctx, big.NewInt(100))
	require.NoError(t, err)

	failing := func(ctx context.Context, to string, amount *big.Int) (string, error) {
		return "", errors.New("rpc unreachable")
	}

	_, err = st.SettleClaim(ctx, ownerA, time.Now(), failing)
	assert.ErrorIs(t, err, domain.ErrTransferFailed)

	// the balance survives the failed claim untouched
	earnings, err := st.GetEarnings(ctx, ownerA)
	require.NoError(t, err)
	assert.Equal(t, "100", earnings.String())

	// no claim or outbox row leaked out of the rolled back transaction
	claims, err := st.GetClaims(ctx, ownerA)
	require.NoError(t, err)
	assert.Empty(t, claims)

	events, err := st.GetUnpublishedClaimEvents(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestGetClaims_MostRecentFirst(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "1"), ownerA, "", nil))

	for i, hash := range []string{"0xtx1", "0xtx2", "0xtx3"} {
		_, err := st.SettlePurchase(ctx, big.NewInt(100))
		require.NoError(t, err)
		_, err = st.SettleClaim(ctx, ownerA, base.Add(time.Duration(i)*time.Second), okTransfer(hash))
		require.NoError(t, err)
	}

	claims, err := st.GetClaims(ctx, ownerA)
	require.NoError(t, err)
	require.Len(t, claims, 3)
	assert.Equal(t, "0xtx3", claims[0].ID)
	assert.Equal(t, "0xtx2", claims[1].ID)
	assert.Equal(t, "0xtx1", claims[2].ID)

	// claims are per account
	claimsB, err := st.GetClaims(ctx, ownerB)
	require.NoError(t, err)
	assert.Empty(t, claimsB)
}

func TestMarkClaimEventPublished(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.RegisterSupply(ctx, mustItemKey(t, ownerC, "1"), ownerA, "", nil))
	_, err := st.SettlePurchase(ctx, big.NewInt(100))
	require.NoError(t, err)
	_, err = st.SettleClaim(ctx, ownerA, time.Now(), okTransfer("0xtx1"))
	require.NoError(t, err)

	events, err := st.GetUnpublishedClaimEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)

	require.NoError(t, st.MarkClaimEventPublished(ctx, events[0].ID, time.Now().UTC()))

	remaining, err := st.GetUnpublishedClaimEvents(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
