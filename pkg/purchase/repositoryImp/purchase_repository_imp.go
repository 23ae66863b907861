package repositoryImp

import (
	"hoacuong/entities"
	"hoacuong/pkg/purchase/repository"
	"hoacuong/pkg/store"
)

type purchaseRepo struct{ c *store.Collection[entities.PurchaseRecord] }

func New(st *store.Store) repository.PurchaseRepository { return &purchaseRepo{st.Purchases} }

// Create prepends; the collection is newest-first.
func (r *purchaseRepo) Create(p entities.PurchaseRecord) { r.c.Add(p) }
func (r *purchaseRepo) Delete(id string) bool            { return r.c.Remove(id) }
func (r *purchaseRepo) List() []entities.PurchaseRecord  { return r.c.All() }

func (r *purchaseRepo) FindByID(id string) (entities.PurchaseRecord, bool) { return r.c.Find(id) }
