// Package store owns the in-memory collections of the console. Nothing is
// persisted: a restart starts from whatever the caller seeds.
package store

import (
	"sync"

	"hoacuong/entities"
)

const (
	KindAreas     = "areas"
	KindFarmers   = "farmers"
	KindPurchases = "purchases"
	KindAll       = "all"
)

// Snapshot is a read-only copy of all three collections taken under one lock.
type Snapshot struct {
	Areas     []entities.GrowingArea    `json:"areas"`
	Farmers   []entities.Farmer         `json:"farmers"`
	Purchases []entities.PurchaseRecord `json:"purchases"`
}

type Store struct {
	mu        sync.RWMutex
	listeners []func(kind string)
	lmu       sync.Mutex

	Areas     *Collection[entities.GrowingArea]
	Farmers   *Collection[entities.Farmer]
	Purchases *Collection[entities.PurchaseRecord]
}

// New builds a store holding the given records in the given order.
func New(areas []entities.GrowingArea, farmers []entities.Farmer, purchases []entities.PurchaseRecord) *Store {
	s := &Store{}
	s.Areas = newCollection[entities.GrowingArea](&s.mu, false, func() { s.emit(KindAreas) })
	s.Farmers = newCollection[entities.Farmer](&s.mu, false, func() { s.emit(KindFarmers) })
	// purchases are kept most-recent-first
	s.Purchases = newCollection[entities.PurchaseRecord](&s.mu, true, func() { s.emit(KindPurchases) })
	s.Areas.replaceLocked(areas)
	s.Farmers.replaceLocked(farmers)
	s.Purchases.replaceLocked(purchases)
	return s
}

// NewSeeded builds a store holding the built-in data set.
func NewSeeded() *Store {
	return New(entities.Seed())
}

// OnChange registers fn to run after every mutation.
func (s *Store) OnChange(fn func(kind string)) {
	s.lmu.Lock()
	s.listeners = append(s.listeners, fn)
	s.lmu.Unlock()
}

func (s *Store) emit(kind string) {
	s.lmu.Lock()
	ls := append([]func(string){}, s.listeners...)
	s.lmu.Unlock()
	for _, fn := range ls {
		fn(kind)
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Areas:     s.Areas.copyLocked(),
		Farmers:   s.Farmers.copyLocked(),
		Purchases: s.Purchases.copyLocked(),
	}
}

// Reset replaces all three collections in one step.
func (s *Store) Reset(areas []entities.GrowingArea, farmers []entities.Farmer, purchases []entities.PurchaseRecord) {
	s.mu.Lock()
	s.Areas.replaceLocked(areas)
	s.Farmers.replaceLocked(farmers)
	s.Purchases.replaceLocked(purchases)
	s.mu.Unlock()
	s.emit(KindAll)
}

// Clear empties all three collections in one step.
func (s *Store) Clear() {
	s.Reset(nil, nil, nil)
}

// Counts returns the size of each collection.
func (s *Store) Counts() (areas, farmers, purchases int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Areas.items), len(s.Farmers.items), len(s.Purchases.items)
}
