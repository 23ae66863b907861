// Package report derives the dashboard metrics from a store snapshot. Every
// function is pure and recomputed on each read.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hoacuong/entities"
)

const (
	rollupBuckets = 7
	priceWindow   = 10
)

type DailyPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Amount float64 `json:"amount"`
}

type PricePoint struct {
	Date       string  `json:"date"`
	PricePerKg float64 `json:"price_per_kg"`
}

func TotalVolume(purchases []entities.PurchaseRecord) float64 {
	sum := decimal.Zero
	for _, p := range purchases {
		sum = sum.Add(decimal.NewFromFloat(p.Weight))
	}
	return sum.InexactFloat64()
}

func TotalRevenue(purchases []entities.PurchaseRecord) float64 {
	sum := decimal.Zero
	for _, p := range purchases {
		sum = sum.Add(decimal.NewFromFloat(p.TotalAmount))
	}
	return sum.InexactFloat64()
}

func ActiveAreaCount(areas []entities.GrowingArea) int {
	n := 0
	for _, a := range areas {
		if a.Status == entities.AreaActive {
			n++
		}
	}
	return n
}

// DailyRollup groups purchases by ShortDate label in first-seen order and
// keeps the last seven groups of that order. The order is insertion order,
// not calendar order.
func DailyRollup(purchases []entities.PurchaseRecord) []DailyPoint {
	type bucket struct{ weight, amount decimal.Decimal }
	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for _, p := range purchases {
		label := ShortDate(p.Date)
		b, ok := buckets[label]
		if !ok {
			b = &bucket{}
			buckets[label] = b
			order = append(order, label)
		}
		b.weight = b.weight.Add(decimal.NewFromFloat(p.Weight))
		b.amount = b.amount.Add(decimal.NewFromFloat(p.TotalAmount))
	}

	if len(order) > rollupBuckets {
		order = order[len(order)-rollupBuckets:]
	}
	out := make([]DailyPoint, 0, len(order))
	for _, label := range order {
		b := buckets[label]
		out = append(out, DailyPoint{Date: label, Weight: b.weight.InexactFloat64(), Amount: b.amount.InexactFloat64()})
	}
	return out
}

// RecentPriceSeries projects the last ten records in storage order.
func RecentPriceSeries(purchases []entities.PurchaseRecord) []PricePoint {
	start := 0
	if len(purchases) > priceWindow {
		start = len(purchases) - priceWindow
	}
	out := make([]PricePoint, 0, len(purchases)-start)
	for _, p := range purchases[start:] {
		out = append(out, PricePoint{Date: p.Date, PricePerKg: p.PricePerKg})
	}
	return out
}

// ShortDate renders an ISO date as the vi-VN "day thg month" label, e.g.
// "2023-10-20" -> "20 thg 10". Unparseable input is returned unchanged.
func ShortDate(iso string) string {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d thg %d", d.Day(), int(d.Month()))
}
