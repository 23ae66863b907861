package entities

import "github.com/shopspring/decimal"

type QualityType string

const (
	QualityType1 QualityType = "Loại 1"
	QualityType2 QualityType = "Loại 2"
	QualityType3 QualityType = "Loại 3"
)

// QualityTypes lists the grades in display order.
func QualityTypes() []QualityType {
	return []QualityType{QualityType1, QualityType2, QualityType3}
}

// Tone is the display color of the grade.
func (q QualityType) Tone() string {
	switch q {
	case QualityType1:
		return "green"
	case QualityType2:
		return "yellow"
	default:
		return "orange"
	}
}

// PurchaseRecord is an immutable ledger entry. TotalAmount is fixed at creation.
type PurchaseRecord struct {
	ID          string      `json:"id"`
	FarmerID    string      `json:"farmer_id"` // weak ref to Farmer.ID
	Date        string      `json:"date"`      // YYYY-MM-DD
	Weight      float64     `json:"weight"`    // kg
	PricePerKg  float64     `json:"price_per_kg"`
	Quality     QualityType `json:"quality"`
	TotalAmount float64     `json:"total_amount"`
	Note        string      `json:"note,omitempty"`
}

func (p PurchaseRecord) Key() string { return p.ID }

// NewPurchase builds a record and derives TotalAmount = Weight * PricePerKg.
func NewPurchase(id, farmerID, date string, weight, pricePerKg float64, quality QualityType, note string) PurchaseRecord {
	return PurchaseRecord{
		ID:          id,
		FarmerID:    farmerID,
		Date:        date,
		Weight:      weight,
		PricePerKg:  pricePerKg,
		Quality:     quality,
		TotalAmount: LineTotal(weight, pricePerKg),
		Note:        note,
	}
}

func LineTotal(weight, pricePerKg float64) float64 {
	return decimal.NewFromFloat(weight).Mul(decimal.NewFromFloat(pricePerKg)).InexactFloat64()
}
