package report

import (
	"github.com/shopspring/decimal"

	"hoacuong/pkg/i18n"
	"hoacuong/pkg/store"
)

// Overview is the dashboard payload.
type Overview struct {
	TotalVolume     float64      `json:"total_volume"`
	TotalRevenue    float64      `json:"total_revenue"`
	VolumeLabel     string       `json:"volume_label"`
	RevenueLabel    string       `json:"revenue_label"`
	FarmerCount     int          `json:"farmer_count"`
	ActiveAreaCount int          `json:"active_area_count"`
	Daily           []DailyPoint `json:"daily"`
	PriceSeries     []PricePoint `json:"price_series"`
}

func BuildOverview(snap store.Snapshot, lang string) Overview {
	vol := TotalVolume(snap.Purchases)
	rev := TotalRevenue(snap.Purchases)
	return Overview{
		TotalVolume:     vol,
		TotalRevenue:    rev,
		VolumeLabel:     i18n.T(lang, i18n.KeyVolumeTons, scaled(vol, 1000, 2)),
		RevenueLabel:    i18n.T(lang, i18n.KeyRevenueMillion, scaled(rev, 1000000, 1)),
		FarmerCount:     len(snap.Farmers),
		ActiveAreaCount: ActiveAreaCount(snap.Areas),
		Daily:           DailyRollup(snap.Purchases),
		PriceSeries:     RecentPriceSeries(snap.Purchases),
	}
}

func scaled(v float64, div int64, places int32) string {
	return decimal.NewFromFloat(v).Div(decimal.NewFromInt(div)).StringFixed(places)
}
