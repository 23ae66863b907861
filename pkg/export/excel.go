// pkg/export/excel.go
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hoacuong/entities"
	"hoacuong/pkg/i18n"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Header returns the localized column titles in export order.
func Header(lang string) []string {
	keys := []string{
		i18n.KeyColDate, i18n.KeyColFarmer, i18n.KeyColWeight, i18n.KeyColQuality,
		i18n.KeyColPrice, i18n.KeyColTotal, i18n.KeyColNote,
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = i18n.T(lang, k)
	}
	return out
}

func SheetName(lang string) string { return i18n.T(lang, i18n.KeySheetName) }

func FileName(lang string) string { return i18n.T(lang, i18n.KeyExportFile) }

// WritePurchases writes one workbook with a header row and one row per
// purchase, in the given order. Farmer names resolve through FarmerID; a
// dangling reference gets the localized placeholder.
func WritePurchases(w io.Writer, purchases []entities.PurchaseRecord, farmers []entities.Farmer, lang string) error {
	names := make(map[string]string, len(farmers))
	for _, f := range farmers {
		names[f.ID] = f.Name
	}
	unknown := i18n.T(lang, i18n.KeyFarmerUnknown)

	x := excelize.NewFile()
	defer x.Close()

	sheet := SheetName(lang)
	if err := x.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	head := Header(lang)
	row := make([]any, len(head))
	for i, h := range head {
		row[i] = h
	}
	if err := x.SetSheetRow(sheet, "A1", &row); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if style, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = x.SetRowStyle(sheet, 1, 1, style)
	}

	for i, p := range purchases {
		name, ok := names[p.FarmerID]
		if !ok {
			name = unknown
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vals := []any{p.Date, name, p.Weight, string(p.Quality), p.PricePerKg, p.TotalAmount, p.Note}
		if err := x.SetSheetRow(sheet, cell, &vals); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	_ = x.SetColWidth(sheet, "A", "G", 18)

	if err := x.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
