package serviceImp

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"hoacuong/entities"
	farmerrepo "hoacuong/pkg/farmer/repository"
	repo "hoacuong/pkg/purchase/repository"
	"hoacuong/pkg/purchase/service"
)

type purchaseSvc struct {
	r       repo.PurchaseRepository
	farmers farmerrepo.FarmerRepository
	newID   func() string
}

func NewPurchaseService(r repo.PurchaseRepository, farmers farmerrepo.FarmerRepository) service.PurchaseService {
	return &purchaseSvc{r: r, farmers: farmers, newID: uuid.NewString}
}

func (s *purchaseSvc) CreatePurchase(in service.PurchaseInput) entities.PurchaseRecord {
	if in.Quality == "" {
		in.Quality = entities.QualityType1
	}
	p := entities.NewPurchase(s.newID(), in.FarmerID, in.Date, in.Weight, in.PricePerKg, in.Quality, in.Note)
	s.r.Create(p)
	return p
}

func (s *purchaseSvc) DeletePurchase(id string) bool { return s.r.Delete(id) }

func (s *purchaseSvc) GetPurchase(id string) (entities.PurchaseRecord, bool) { return s.r.FindByID(id) }

func (s *purchaseSvc) FarmerOf(p entities.PurchaseRecord) (entities.Farmer, bool) {
	return s.farmers.FindByID(p.FarmerID)
}

// Ledger skips records whose farmer no longer resolves, whatever the term.
func (s *purchaseSvc) Ledger(term string) []service.LedgerEntry {
	names := make(map[string]string)
	for _, f := range s.farmers.List() {
		names[f.ID] = f.Name
	}
	lower := strings.ToLower(term)
	out := make([]service.LedgerEntry, 0)
	for _, p := range s.r.List() {
		name, ok := names[p.FarmerID]
		if !ok || !strings.Contains(strings.ToLower(name), lower) {
			continue
		}
		out = append(out, service.LedgerEntry{PurchaseRecord: p, FarmerName: name, QualityTone: p.Quality.Tone()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return parseDate(out[i].Date).After(parseDate(out[j].Date))
	})
	return out
}

// parseDate returns the zero time for malformed dates, which sorts them last.
func parseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
