package repository

import "hoacuong/entities"

// PurchaseRepository has no Update: purchases are append-and-delete only.
type PurchaseRepository interface {
	Create(p entities.PurchaseRecord)
	Delete(id string) bool
	FindByID(id string) (entities.PurchaseRecord, bool)
	List() []entities.PurchaseRecord
}
