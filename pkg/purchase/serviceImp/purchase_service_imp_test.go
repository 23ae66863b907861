package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoacuong/entities"
	farmerRepoImp "hoacuong/pkg/farmer/repositoryImp"
	"hoacuong/pkg/purchase/repositoryImp"
	"hoacuong/pkg/purchase/service"
	"hoacuong/pkg/store"
)

func newSvc() (service.PurchaseService, *store.Store) {
	st := store.NewSeeded()
	return NewPurchaseService(repositoryImp.New(st), farmerRepoImp.New(st)), st
}

func ids(entries []service.LedgerEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestCreatePurchase(t *testing.T) {
	s, st := newSvc()
	p := s.CreatePurchase(service.PurchaseInput{FarmerID: "f3", Date: "2023-10-24", Weight: 100, PricePerKg: 13500})

	assert.Equal(t, entities.QualityType1, p.Quality)
	assert.Equal(t, 1350000.0, p.TotalAmount)
	assert.Equal(t, p, st.Purchases.All()[0], "purchases prepend")
}

func TestLedgerSortsByDateDescStable(t *testing.T) {
	s, _ := newSvc()
	got := s.Ledger("")
	assert.Equal(t, []string{"p5", "p3", "p4", "p2", "p1"}, ids(got))
	assert.Equal(t, "Trần Thị Bích", got[0].FarmerName)
	assert.Equal(t, "orange", got[0].QualityTone)
}

func TestLedgerFiltersByFarmerName(t *testing.T) {
	s, _ := newSvc()
	assert.Equal(t, []string{"p3", "p1"}, ids(s.Ledger("AN")))
	assert.Empty(t, s.Ledger("zzz"))
}

func TestLedgerSkipsDanglingFarmer(t *testing.T) {
	s, st := newSvc()
	st.Farmers.Remove("f2")

	assert.Equal(t, []string{"p3", "p4", "p1"}, ids(s.Ledger("")))
	_, ok := s.GetPurchase("p2")
	assert.True(t, ok, "record itself is kept")
}

func TestLedgerMalformedDateSortsLast(t *testing.T) {
	s, st := newSvc()
	st.Purchases.Add(entities.NewPurchase("bad", "f1", "20/10/2023", 1, 1, entities.QualityType1, ""))
	got := ids(s.Ledger(""))
	require.Len(t, got, 6)
	assert.Equal(t, "bad", got[5])
}

func TestFarmerOfAndDelete(t *testing.T) {
	s, _ := newSvc()
	p, ok := s.GetPurchase("p4")
	require.True(t, ok)
	f, ok := s.FarmerOf(p)
	require.True(t, ok)
	assert.Equal(t, "Lê Văn Cường", f.Name)

	assert.True(t, s.DeletePurchase("p4"))
	assert.False(t, s.DeletePurchase("p4"))
}
