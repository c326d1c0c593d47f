package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prasetia/cetakindo-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMovement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	material := env.createMaterial(t, "Vinyl", 50, 0)

	movement, err := env.stock.ApplyMovement(ctx, &ApplyMovementInput{
		MaterialID: material.ID,
		Type:       enum.MovementIn,
		Qty:        5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, movement.SignedQty())

	fresh, err := env.materialRepo.GetByID(ctx, material.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, fresh.StockQty)

	// Stock may go negative; the ledger records reality.
	_, err = env.stock.ApplyMovement(ctx, &ApplyMovementInput{
		MaterialID: material.ID,
		Type:       enum.MovementOut,
		Qty:        8,
	})
	require.NoError(t, err)

	fresh, err = env.materialRepo.GetByID(ctx, material.ID)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, fresh.StockQty, 1e-9)

	sum, err := env.movementRepo.SignedSum(ctx, material.ID)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, sum, 1e-9)

	negatives, err := env.stock.NegativeStock(ctx)
	require.NoError(t, err)
	require.Len(t, negatives, 1)
	assert.Equal(t, material.ID, negatives[0].ID)
}

func TestApplyMovementValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	material := env.createMaterial(t, "Vinyl", 50, 10)

	_, err := env.stock.ApplyMovement(ctx, &ApplyMovementInput{
		MaterialID: material.ID,
		Type:       enum.MovementIn,
		Qty:        0,
	})
	assert.Error(t, err)

	_, err = env.stock.ApplyMovement(ctx, &ApplyMovementInput{
		MaterialID: uuid.New(),
		Type:       enum.MovementIn,
		Qty:        1,
	})
	assert.Error(t, err)
}

func TestOpname(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	material := env.createMaterial(t, "Vinyl", 50, 0)
	_, err := env.stock.ApplyMovement(ctx, &ApplyMovementInput{
		MaterialID: material.ID,
		Type:       enum.MovementIn,
		Qty:        10,
	})
	require.NoError(t, err)

	// A count within tolerance is a no-op.
	movement, err := env.stock.Opname(ctx, material.ID, 10.0005, nil)
	require.NoError(t, err)
	assert.Nil(t, movement)

	fresh, err := env.materialRepo.GetByID(ctx, material.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, fresh.StockQty)

	// A real shortfall books a corrective "out" movement.
	movement, err = env.stock.Opname(ctx, material.ID, 8, nil)
	require.NoError(t, err)
	require.NotNil(t, movement)
	assert.Equal(t, enum.MovementOut, movement.Type)
	assert.InDelta(t, 2.0, movement.Qty, 1e-9)

	fresh, err = env.materialRepo.GetByID(ctx, material.ID)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, fresh.StockQty, 1e-9)

	// A surplus books an "in".
	movement, err = env.stock.Opname(ctx, material.ID, 9.5, nil)
	require.NoError(t, err)
	require.NotNil(t, movement)
	assert.Equal(t, enum.MovementIn, movement.Type)
	assert.InDelta(t, 1.5, movement.Qty, 1e-9)
}

func TestAuditDetectsDrift(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	clean := env.createMaterial(t, "Vinyl", 50, 0)
	drifted := env.createMaterial(t, "Flexi", 25, 0)

	for _, id := range []uuid.UUID{clean.ID, drifted.ID} {
		_, err := env.stock.ApplyMovement(ctx, &ApplyMovementInput{
			MaterialID: id,
			Type:       enum.MovementIn,
			Qty:        5,
		})
		require.NoError(t, err)
	}

	// Corrupt one cached quantity behind the ledger's back.
	require.NoError(t, env.materialRepo.UpdateStockQty(ctx, drifted.ID, 7))

	results, err := env.stock.Audit(ctx)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, drifted.ID, results[0].MaterialID)
	assert.InDelta(t, 7.0, results[0].CachedQty, 1e-9)
	assert.InDelta(t, 5.0, results[0].LedgerQty, 1e-9)
	assert.InDelta(t, 2.0, results[0].Drift, 1e-9)
}
