package serviceImp

import (
	"strings"

	"github.com/google/uuid"

	"hoacuong/entities"
	repo "hoacuong/pkg/area/repository"
	"hoacuong/pkg/area/service"
)

type areaSvc struct {
	r     repo.AreaRepository
	newID func() string
}

func NewAreaService(r repo.AreaRepository) service.AreaService {
	return &areaSvc{r: r, newID: uuid.NewString}
}

func (s *areaSvc) CreateArea(in service.AreaInput) entities.GrowingArea {
	if in.Status == "" {
		in.Status = entities.AreaActive
	}
	a := entities.GrowingArea{
		ID:       s.newID(),
		Code:     in.Code,
		Name:     in.Name,
		Location: in.Location,
		Acreage:  in.Acreage,
		Status:   in.Status,
	}
	s.r.Create(a)
	return a
}

func (s *areaSvc) UpdateArea(id string, p service.AreaPatch) (entities.GrowingArea, bool) {
	cur, ok := s.r.FindByID(id)
	if !ok {
		return entities.GrowingArea{}, false
	}
	// apply patch (only non-nil fields)
	if p.Code != nil {
		cur.Code = *p.Code
	}
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Location != nil {
		cur.Location = *p.Location
	}
	if p.Acreage != nil {
		cur.Acreage = *p.Acreage
	}
	if p.Status != nil {
		cur.Status = *p.Status
	}
	if !s.r.Update(cur) {
		return entities.GrowingArea{}, false
	}
	return cur, true
}

func (s *areaSvc) DeleteArea(id string) bool { return s.r.Delete(id) }

func (s *areaSvc) GetArea(id string) (entities.GrowingArea, bool) { return s.r.FindByID(id) }

// SearchAreas matches term case-insensitively against name or code.
func (s *areaSvc) SearchAreas(term string) []entities.GrowingArea {
	term = strings.ToLower(term)
	if term == "" {
		return s.r.List()
	}
	return s.r.Filter(func(a entities.GrowingArea) bool {
		return strings.Contains(strings.ToLower(a.Name), term) ||
			strings.Contains(strings.ToLower(a.Code), term)
	})
}
