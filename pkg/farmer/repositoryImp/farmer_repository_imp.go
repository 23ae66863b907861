package repositoryImp

import (
	"hoacuong/entities"
	"hoacuong/pkg/farmer/repository"
	"hoacuong/pkg/store"
)

type farmerRepo struct{ c *store.Collection[entities.Farmer] }

func New(st *store.Store) repository.FarmerRepository { return &farmerRepo{st.Farmers} }

func (r *farmerRepo) Create(f entities.Farmer)      { r.c.Add(f) }
func (r *farmerRepo) Update(f entities.Farmer) bool { return r.c.Update(f) }
func (r *farmerRepo) Delete(id string) bool         { return r.c.Remove(id) }
func (r *farmerRepo) List() []entities.Farmer       { return r.c.All() }

func (r *farmerRepo) FindByID(id string) (entities.Farmer, bool) { return r.c.Find(id) }

func (r *farmerRepo) Filter(keep func(entities.Farmer) bool) []entities.Farmer {
	return r.c.Filter(keep)
}
