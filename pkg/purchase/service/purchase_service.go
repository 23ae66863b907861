package service

import "hoacuong/entities"

type PurchaseService interface {
	CreatePurchase(in PurchaseInput) entities.PurchaseRecord
	DeletePurchase(id string) bool
	GetPurchase(id string) (entities.PurchaseRecord, bool)
	// Ledger lists purchases whose farmer name contains term, newest date first.
	Ledger(term string) []LedgerEntry
	// FarmerOf resolves the weak farmer reference.
	FarmerOf(p entities.PurchaseRecord) (entities.Farmer, bool)
}

type PurchaseInput struct {
	FarmerID   string               `json:"farmer_id" validate:"required"`
	Date       string               `json:"date" validate:"required,datetime=2006-01-02"`
	Weight     float64              `json:"weight" validate:"gt=0"`
	PricePerKg float64              `json:"price_per_kg" validate:"gt=0"`
	Quality    entities.QualityType `json:"quality" validate:"omitempty,quality"`
	Note       string               `json:"note"`
}

type LedgerEntry struct {
	entities.PurchaseRecord
	FarmerName  string `json:"farmer_name"`
	QualityTone string `json:"quality_tone"`
}
