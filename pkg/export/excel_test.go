package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hoacuong/entities"
)

func readRows(t *testing.T, buf *bytes.Buffer, sheet string) [][]string {
	t.Helper()
	x, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer x.Close()
	rows, err := x.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestWritePurchasesSeed(t *testing.T) {
	_, farmers, purchases := entities.Seed()
	var buf bytes.Buffer
	require.NoError(t, WritePurchases(&buf, purchases, farmers, "vi"))

	rows := readRows(t, &buf, "Thu Mua")
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Ngày", "Nông Dân", "Khối Lượng (kg)", "Chất Lượng", "Đơn Giá (VND)", "Thành Tiền (VND)", "Ghi Chú"}, rows[0])
	assert.Equal(t, "2023-10-20", rows[1][0])
	assert.Equal(t, "Nguyễn Văn An", rows[1][1])
	assert.Equal(t, "Loại 1", rows[1][3])
	assert.Equal(t, "Hàng đẹp", rows[1][6])
	assert.Equal(t, "Lê Văn Cường", rows[4][1])
}

func TestWritePurchasesDanglingFarmer(t *testing.T) {
	purchases := []entities.PurchaseRecord{
		entities.NewPurchase("x", "gone", "2024-02-01", 10, 1000, entities.QualityType3, ""),
	}
	var buf bytes.Buffer
	require.NoError(t, WritePurchases(&buf, purchases, nil, "en"))

	rows := readRows(t, &buf, "Purchases")
	require.Len(t, rows, 2)
	assert.Equal(t, "Farmer Name", rows[0][1])
	assert.Equal(t, "Unknown", rows[1][1])
}

func TestWritePurchasesEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePurchases(&buf, nil, nil, "vi"))
	rows := readRows(t, &buf, "Thu Mua")
	assert.Len(t, rows, 1)
}
