package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hoacuong/pkg/i18n"
)

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 7500000.0, LineTotal(500, 15000))
	assert.Equal(t, 0.3, LineTotal(0.1, 3))
	assert.Equal(t, 0.0, LineTotal(0, 15000))
}

func TestNewPurchaseDerivesTotal(t *testing.T) {
	p := NewPurchase("p9", "f1", "2024-01-02", 450, 15500, QualityType2, "")
	assert.Equal(t, 6975000.0, p.TotalAmount)
	assert.Equal(t, "p9", p.Key())
}

func TestQualityTypesOrderAndTone(t *testing.T) {
	assert.Equal(t, []QualityType{"Loại 1", "Loại 2", "Loại 3"}, QualityTypes())
	assert.Equal(t, "green", QualityType1.Tone())
	assert.Equal(t, "yellow", QualityType2.Tone())
	assert.Equal(t, "orange", QualityType3.Tone())
}

func TestAreaStatusLabel(t *testing.T) {
	assert.Equal(t, "Đang hoạt động", AreaActive.Label("vi"))
	assert.Equal(t, i18n.T("en", i18n.KeyStatusInactive), AreaInactive.Label("en"))
	assert.NotEqual(t, AreaActive.Label("en"), AreaInactive.Label("en"))
}

func TestSeedReturnsFreshCopies(t *testing.T) {
	areas, farmers, purchases := Seed()
	assert.Len(t, areas, 3)
	assert.Len(t, farmers, 3)
	assert.Len(t, purchases, 5)

	areas[0].Name = "changed"
	purchases[0].Weight = 1

	again, _, againP := Seed()
	assert.Equal(t, "Vùng Cầu Đất 1", again[0].Name)
	assert.Equal(t, 500.0, againP[0].Weight)
}

func TestSeedTotalsMatchLineTotal(t *testing.T) {
	_, _, purchases := Seed()
	for _, p := range purchases {
		assert.Equal(t, LineTotal(p.Weight, p.PricePerKg), p.TotalAmount, p.ID)
	}
}
