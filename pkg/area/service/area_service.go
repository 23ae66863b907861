package service

import "hoacuong/entities"

type AreaService interface {
	CreateArea(in AreaInput) entities.GrowingArea
	UpdateArea(id string, patch AreaPatch) (entities.GrowingArea, bool)
	DeleteArea(id string) bool
	GetArea(id string) (entities.GrowingArea, bool)
	SearchAreas(term string) []entities.GrowingArea
}

type AreaInput struct {
	Code     string              `json:"code" validate:"required"`
	Name     string              `json:"name" validate:"required"`
	Location string              `json:"location"`
	Acreage  float64             `json:"acreage" validate:"gte=0"`
	Status   entities.AreaStatus `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// AreaPatch carries only the fields being edited.
type AreaPatch struct {
	Code     *string              `json:"code" validate:"omitnil,min=1"`
	Name     *string              `json:"name" validate:"omitnil,min=1"`
	Location *string              `json:"location"`
	Acreage  *float64             `json:"acreage" validate:"omitnil,gte=0"`
	Status   *entities.AreaStatus `json:"status" validate:"omitnil,oneof=Active Inactive"`
}
