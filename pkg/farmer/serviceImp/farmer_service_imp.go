package serviceImp

import (
	"strings"

	"github.com/google/uuid"

	"hoacuong/entities"
	arearepo "hoacuong/pkg/area/repository"
	repo "hoacuong/pkg/farmer/repository"
	"hoacuong/pkg/farmer/service"
)

type farmerSvc struct {
	r     repo.FarmerRepository
	areas arearepo.AreaRepository
	newID func() string
}

func NewFarmerService(r repo.FarmerRepository, areas arearepo.AreaRepository) service.FarmerService {
	return &farmerSvc{r: r, areas: areas, newID: uuid.NewString}
}

// CreateFarmer accepts any area_id, including one that does not exist.
func (s *farmerSvc) CreateFarmer(in service.FarmerInput) entities.Farmer {
	f := entities.Farmer{
		ID:      s.newID(),
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
		AreaID:  in.AreaID,
	}
	s.r.Create(f)
	return f
}

func (s *farmerSvc) UpdateFarmer(id string, p service.FarmerPatch) (entities.Farmer, bool) {
	cur, ok := s.r.FindByID(id)
	if !ok {
		return entities.Farmer{}, false
	}
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Phone != nil {
		cur.Phone = *p.Phone
	}
	if p.Address != nil {
		cur.Address = *p.Address
	}
	if p.AreaID != nil {
		cur.AreaID = *p.AreaID
	}
	if !s.r.Update(cur) {
		return entities.Farmer{}, false
	}
	return cur, true
}

func (s *farmerSvc) DeleteFarmer(id string) bool { return s.r.Delete(id) }

func (s *farmerSvc) GetFarmer(id string) (entities.Farmer, bool) { return s.r.FindByID(id) }

// SearchFarmers matches name case-insensitively, or phone as typed.
func (s *farmerSvc) SearchFarmers(term string) []entities.Farmer {
	if term == "" {
		return s.r.List()
	}
	lower := strings.ToLower(term)
	return s.r.Filter(func(f entities.Farmer) bool {
		return strings.Contains(strings.ToLower(f.Name), lower) || strings.Contains(f.Phone, term)
	})
}

func (s *farmerSvc) AreaOf(f entities.Farmer) (entities.GrowingArea, bool) {
	if f.AreaID == "" {
		return entities.GrowingArea{}, false
	}
	return s.areas.FindByID(f.AreaID)
}
