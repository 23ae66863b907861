package repository

import "hoacuong/entities"

type FarmerRepository interface {
	Create(f entities.Farmer)
	Update(f entities.Farmer) bool
	Delete(id string) bool
	FindByID(id string) (entities.Farmer, bool)
	List() []entities.Farmer
	Filter(keep func(entities.Farmer) bool) []entities.Farmer
}
