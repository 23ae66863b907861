package repositoryImp

import (
	"hoacuong/entities"
	"hoacuong/pkg/area/repository"
	"hoacuong/pkg/store"
)

type areaRepo struct{ c *store.Collection[entities.GrowingArea] }

func New(st *store.Store) repository.AreaRepository { return &areaRepo{st.Areas} }

func (r *areaRepo) Create(a entities.GrowingArea)      { r.c.Add(a) }
func (r *areaRepo) Update(a entities.GrowingArea) bool { return r.c.Update(a) }
func (r *areaRepo) Delete(id string) bool              { return r.c.Remove(id) }
func (r *areaRepo) List() []entities.GrowingArea       { return r.c.All() }

func (r *areaRepo) FindByID(id string) (entities.GrowingArea, bool) { return r.c.Find(id) }

func (r *areaRepo) Filter(keep func(entities.GrowingArea) bool) []entities.GrowingArea {
	return r.c.Filter(keep)
}
