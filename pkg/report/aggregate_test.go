package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"hoacuong/entities"
	"hoacuong/pkg/store"
)

func purchase(id, date string, weight, price float64) entities.PurchaseRecord {
	return entities.NewPurchase(id, "f1", date, weight, price, entities.QualityType1, "")
}

func TestTotals(t *testing.T) {
	ps := []entities.PurchaseRecord{
		purchase("a", "2023-10-20", 500, 15000),
		purchase("b", "2023-10-21", 300, 12000),
	}
	assert.Equal(t, 800.0, TotalVolume(ps))
	assert.Equal(t, 11100000.0, TotalRevenue(ps))
}

func TestTotalsEmpty(t *testing.T) {
	assert.Zero(t, TotalVolume(nil))
	assert.Zero(t, TotalRevenue(nil))
	assert.Empty(t, DailyRollup(nil))
	assert.NotNil(t, DailyRollup(nil))
	assert.Empty(t, RecentPriceSeries(nil))
}

func TestTotalRevenueUsesStoredAmount(t *testing.T) {
	p := purchase("a", "2023-10-20", 10, 10)
	p.TotalAmount = 42
	assert.Equal(t, 42.0, TotalRevenue([]entities.PurchaseRecord{p}))
}

func TestActiveAreaCount(t *testing.T) {
	areas, _, _ := entities.Seed()
	assert.Equal(t, 2, ActiveAreaCount(areas))
}

func TestDailyRollupGroupsByLabel(t *testing.T) {
	ps := []entities.PurchaseRecord{
		purchase("1", "2023-10-20", 500, 15000),
		purchase("2", "2023-10-21", 300, 12000),
		purchase("3", "2023-10-22", 450, 15500),
		purchase("4", "2023-10-22", 1200, 14000),
		purchase("5", "2023-10-23", 200, 8000),
	}
	got := DailyRollup(ps)
	assert.Equal(t, []DailyPoint{
		{Date: "20 thg 10", Weight: 500, Amount: 7500000},
		{Date: "21 thg 10", Weight: 300, Amount: 3600000},
		{Date: "22 thg 10", Weight: 1650, Amount: 6975000 + 16800000},
		{Date: "23 thg 10", Weight: 200, Amount: 1600000},
	}, got)
}

func TestDailyRollupKeepsLastSevenInsertionGroups(t *testing.T) {
	var ps []entities.PurchaseRecord
	// out of calendar order on purpose
	days := []int{9, 1, 2, 3, 4, 5, 6, 7, 8}
	for i, d := range days {
		ps = append(ps, purchase(fmt.Sprint(i), fmt.Sprintf("2023-10-%02d", d), 1, 1))
	}
	got := DailyRollup(ps)
	assert.Len(t, got, 7)
	assert.Equal(t, "2 thg 10", got[0].Date)
	assert.Equal(t, "8 thg 10", got[6].Date)
}

func TestDailyRollupDoesNotMutate(t *testing.T) {
	_, _, ps := entities.Seed()
	_, _, want := entities.Seed()
	DailyRollup(ps)
	RecentPriceSeries(ps)
	assert.Equal(t, want, ps)
}

func TestRecentPriceSeriesUsesStorageOrder(t *testing.T) {
	var ps []entities.PurchaseRecord
	for i := 0; i < 12; i++ {
		ps = append(ps, purchase(fmt.Sprint(i), fmt.Sprintf("2023-10-%02d", 12-i), 1, float64(1000+i)))
	}
	got := RecentPriceSeries(ps)
	assert.Len(t, got, 10)
	assert.Equal(t, PricePoint{Date: "2023-10-10", PricePerKg: 1002}, got[0])
	assert.Equal(t, PricePoint{Date: "2023-10-01", PricePerKg: 1011}, got[9])
}

func TestShortDate(t *testing.T) {
	assert.Equal(t, "5 thg 1", ShortDate("2024-01-05"))
	assert.Equal(t, "not-a-date", ShortDate("not-a-date"))
}

func TestBuildOverview(t *testing.T) {
	o := BuildOverview(store.NewSeeded().Snapshot(), "vi")
	assert.Equal(t, 2650.0, o.TotalVolume)
	assert.Equal(t, 36475000.0, o.TotalRevenue)
	assert.Equal(t, "2.65 Tấn", o.VolumeLabel)
	assert.Equal(t, "36.5 Tr", o.RevenueLabel)
	assert.Equal(t, 3, o.FarmerCount)
	assert.Equal(t, 2, o.ActiveAreaCount)
	assert.Len(t, o.Daily, 4)
	assert.Len(t, o.PriceSeries, 5)
}
