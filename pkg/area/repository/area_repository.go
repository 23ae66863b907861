package repository

import "hoacuong/entities"

type AreaRepository interface {
	Create(a entities.GrowingArea)
	Update(a entities.GrowingArea) bool
	Delete(id string) bool
	FindByID(id string) (entities.GrowingArea, bool)
	List() []entities.GrowingArea
	Filter(keep func(entities.GrowingArea) bool) []entities.GrowingArea
}
