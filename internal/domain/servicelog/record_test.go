//go:build unit

package servicelog_test

import (
	"testing"
	"time"

	"motorcare/internal/domain/servicelog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int32Ptr(v int32) *int32       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func baseInput() servicelog.RecordInput {
	return servicelog.RecordInput{
		Mileage: int32Ptr(42500),
	}
}

func newRecord(t *testing.T, lastMileage int32, in servicelog.RecordInput) (*servicelog.Record, error) {
	t.Helper()
	serviceID := uuid.New()
	return servicelog.NewRecord(
		"1HGBH41JXMN109186",
		uuid.New(),
		&serviceID,
		"Oil Change",
		49.99,
		"Jo Wrench",
		time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
		lastMileage,
		in,
	)
}

func TestNewRecord(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		rec, err := newRecord(t, 42000, baseInput())
		require.NoError(t, err)
		require.NotNil(t, rec)

		assert.NotEqual(t, uuid.Nil, rec.ID())
		assert.Equal(t, int32(42500), rec.Mileage())
		assert.InDelta(t, 49.99, rec.Cost(), 0.001, "snapshot price is the default cost")
		assert.Equal(t, "Jo Wrench", rec.PerformedBy())
		assert.Empty(t, rec.Parts())
	})

	t.Run("mileage validation", func(t *testing.T) {
		t.Run("missing mileage", func(t *testing.T) {
			in := baseInput()
			in.Mileage = nil
			_, err := newRecord(t, 42000, in)
			require.ErrorIs(t, err, servicelog.ErrMissingMileage)
		})

		t.Run("below last recorded value", func(t *testing.T) {
			in := baseInput()
			in.Mileage = int32Ptr(41999)
			_, err := newRecord(t, 42000, in)
			require.ErrorIs(t, err, servicelog.ErrMileageRegression)
		})

		t.Run("equal to last recorded value", func(t *testing.T) {
			in := baseInput()
			in.Mileage = int32Ptr(42000)
			rec, err := newRecord(t, 42000, in)
			require.NoError(t, err)
			assert.Equal(t, int32(42000), rec.Mileage())
		})
	})

	t.Run("cost override replaces the snapshot price", func(t *testing.T) {
		in := baseInput()
		in.CostOverride = float64Ptr(75)
		rec, err := newRecord(t, 42000, in)
		require.NoError(t, err)
		assert.InDelta(t, 75, rec.Cost(), 0.001)
	})

	t.Run("zero cost override is honored", func(t *testing.T) {
		in := baseInput()
		in.CostOverride = float64Ptr(0)
		rec, err := newRecord(t, 42000, in)
		require.NoError(t, err)
		assert.Zero(t, rec.Cost())
	})
}

func TestPartUsage(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		part, err := servicelog.NewPartUsage(servicelog.PartUsageInput{
			Name:      "Oil filter",
			UnitPrice: 12.50,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(1), part.Quantity(), "quantity defaults to one")
		assert.Equal(t, servicelog.PurchasedByService, part.PurchasedBy(), "service pays by default")
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name  string
			in    servicelog.PartUsageInput
			errIs error
		}{
			{
				name:  "empty name",
				in:    servicelog.PartUsageInput{Name: "", UnitPrice: 1},
				errIs: servicelog.ErrMissingPartName,
			},
			{
				name:  "whitespace name",
				in:    servicelog.PartUsageInput{Name: "   ", UnitPrice: 1},
				errIs: servicelog.ErrMissingPartName,
			},
			{
				name:  "negative unit price",
				in:    servicelog.PartUsageInput{Name: "Oil filter", UnitPrice: -0.01},
				errIs: servicelog.ErrNegativeUnitPrice,
			},
			{
				name:  "zero quantity",
				in:    servicelog.PartUsageInput{Name: "Oil filter", UnitPrice: 1, Quantity: int32Ptr(0)},
				errIs: servicelog.ErrInvalidQuantity,
			},
			{
				name:  "negative quantity",
				in:    servicelog.PartUsageInput{Name: "Oil filter", UnitPrice: 1, Quantity: int32Ptr(-3)},
				errIs: servicelog.ErrInvalidQuantity,
			},
			{
				name:  "unknown purchase side",
				in:    servicelog.PartUsageInput{Name: "Oil filter", UnitPrice: 1, PurchasedBy: "insurance"},
				errIs: servicelog.ErrInvalidPurchaseSide,
			},
			{
				name: "owner purchase side",
				in:   servicelog.PartUsageInput{Name: "Oil filter", UnitPrice: 1, PurchasedBy: "owner"},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := servicelog.NewPartUsage(tt.in)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})

	t.Run("record rejects an invalid part", func(t *testing.T) {
		in := baseInput()
		in.Parts = []servicelog.PartUsageInput{
			{Name: "Oil filter", UnitPrice: 12.50},
			{Name: "", UnitPrice: 5},
		}
		_, err := newRecord(t, 42000, in)
		require.ErrorIs(t, err, servicelog.ErrMissingPartName)
	})

	t.Run("parts total sums price times quantity", func(t *testing.T) {
		in := baseInput()
		in.Parts = []servicelog.PartUsageInput{
			{Name: "Oil filter", UnitPrice: 12.50, Quantity: int32Ptr(2)},
			{Name: "Engine oil 5W-30", UnitPrice: 38},
		}
		rec, err := newRecord(t, 42000, in)
		require.NoError(t, err)
		assert.InDelta(t, 63, rec.PartsTotal(), 0.001)
		assert.Len(t, rec.Parts(), 2)
	})
}
