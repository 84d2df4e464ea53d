package worker

// rapor_worker.go
// Processes trip-report jobs from QueueRapor: aggregates the trip into a
// summary, renders it to PDF and, when an address was given, enqueues an
// email job with the file attached.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/infra"

	"github.com/rs/zerolog/log"
)

// RaporJobPayload is the job envelope sent to QueueRapor.
type RaporJobPayload struct {
	SeferID uint    `json:"sefer_id"`
	Eposta  *string `json:"eposta,omitempty"`
}

// RaporKaynagi supplies the aggregated trip summary the PDF is built from.
// Kept as an interface so the worker package stays independent of the
// service layer that computes it.
type RaporKaynagi interface {
	SeferRaporu(ctx context.Context, seferID uint) (*dto.SeferRaporuResponse, error)
}

// RaporWorker renders trip-report PDFs in the background.
type RaporWorker struct {
	kaynak         RaporKaynagi
	dispatcher     *Dispatcher
	pdfStoragePath string
}

func NewRaporWorker(kaynak RaporKaynagi, dispatcher *Dispatcher, pdfStoragePath string) *RaporWorker {
	return &RaporWorker{
		kaynak:         kaynak,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles one report job:
//  1. Parse RaporJobPayload from the envelope
//  2. Recompute the trip summary from the ledgers
//  3. Render the PDF to the storage directory
//  4. Enqueue an email job when an address was requested
//
// A returned error sends the job to the DLQ.
func (w *RaporWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload RaporJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("rapor_worker: invalid payload: %w", err)
	}

	rapor, err := w.kaynak.SeferRaporu(ctx, payload.SeferID)
	if err != nil {
		return fmt.Errorf("rapor_worker: sefer %d: %w", payload.SeferID, err)
	}

	pdfPath, err := infra.GenerateSeferRaporuPDF(rapor, w.pdfStoragePath)
	if err != nil {
		return fmt.Errorf("rapor_worker: pdf render: %w", err)
	}
	log.Info().Uint("sefer_id", payload.SeferID).Str("pdf", pdfPath).Msg("rapor_worker: PDF generated")

	if payload.Eposta != nil && *payload.Eposta != "" {
		job := EpostaJobPayload{
			Kime:    *payload.Eposta,
			Konu:    fmt.Sprintf("Sefer raporu — %s %s", rapor.Sefer.Tarih, rapor.Sefer.Hat),
			Govde:   fmt.Sprintf("Ekte %s tarihli %s seferinin raporu yer almaktadir.", rapor.Sefer.Tarih, rapor.Sefer.Hat),
			PDFYolu: pdfPath,
		}
		if err := w.dispatcher.EnqueueEposta(ctx, job); err != nil {
			log.Warn().Err(err).Str("kime", *payload.Eposta).Msg("rapor_worker: failed to enqueue email")
		} else {
			log.Info().Str("kime", *payload.Eposta).Msg("rapor_worker: email job enqueued")
		}
	}
	return nil
}
