package infra

// pdf.go — Trip report rendering using go-pdf/fpdf.
// One A4 page per trip:
//   - Route and date header
//   - Crew and vehicle block
//   - Seat revenue with per-payment-method breakdown
//   - Cash ledger summary (income / expense / net)
//   - On-board sales line
//
// The output file is saved to storagePath/sefer_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateSeferRaporuPDF renders a trip summary to PDF.
// storagePath is the directory where the PDF will be written (created if needed).
// Returns the absolute path to the generated file.
func GenerateSeferRaporuPDF(rapor *dto.SeferRaporuResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("sefer_%d.pdf", rapor.Sefer.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Sefer Raporu", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("%s — %s %s", rapor.Sefer.Hat, rapor.Sefer.Tarih, rapor.Sefer.KalkisSaati), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Crew and vehicle ─────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	satir := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW-35, 6, value, "", 1, "L", false, 0, "")
	}
	satir("Plaka:", rapor.Sefer.Plaka)
	satir("Kaptan:", rapor.Sefer.Kaptan)
	satir("2. Kaptan:", rapor.Sefer.Kaptan2)
	satir("Host/Hostes:", rapor.Sefer.Hostes)
	pdf.Ln(3)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Seat revenue ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, "Koltuk Satislari", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW*0.6, 6, "Dolu koltuk:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 6, fmt.Sprintf("%d", rapor.DoluKoltuk), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW*0.6, 6, "Koltuk geliri:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 6, rapor.KoltukGeliri.StringFixed(2)+" TL", "", 1, "R", false, 0, "")

	yontemler := make([]string, 0, len(rapor.OdemeDagilim))
	for y := range rapor.OdemeDagilim {
		yontemler = append(yontemler, y)
	}
	sort.Strings(yontemler)
	for _, y := range yontemler {
		pdf.CellFormat(contentW*0.6, 5, "  "+y+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 5, rapor.OdemeDagilim[y].StringFixed(2)+" TL", "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// ── Cash ledger ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, "Kasa", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW*0.6, 6, "Gelir:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 6, rapor.Kasa.Gelir.StringFixed(2)+" TL", "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW*0.6, 6, "Gider:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 6, rapor.Kasa.Gider.StringFixed(2)+" TL", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW*0.6, 7, "Net:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 7, rapor.Kasa.Net.StringFixed(2)+" TL", "", 1, "R", false, 0, "")
	pdf.Ln(3)

	// ── On-board sales ───────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, "Bufe", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW*0.6, 6, "Satilan adet:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 6, rapor.BufeAdet.String(), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW*0.6, 6, "Bufe geliri:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 6, rapor.BufeGeliri.StringFixed(2)+" TL", "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
