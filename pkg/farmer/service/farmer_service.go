package service

import "hoacuong/entities"

type FarmerService interface {
	CreateFarmer(in FarmerInput) entities.Farmer
	UpdateFarmer(id string, patch FarmerPatch) (entities.Farmer, bool)
	DeleteFarmer(id string) bool
	GetFarmer(id string) (entities.Farmer, bool)
	SearchFarmers(term string) []entities.Farmer
	// AreaOf resolves the weak area reference; false when unassigned or dangling.
	AreaOf(f entities.Farmer) (entities.GrowingArea, bool)
}

type FarmerInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
	AreaID  string `json:"area_id"`
}

type FarmerPatch struct {
	Name    *string `json:"name" validate:"omitnil,min=1"`
	Phone   *string `json:"phone" validate:"omitnil,min=1"`
	Address *string `json:"address"`
	AreaID  *string `json:"area_id"`
}
