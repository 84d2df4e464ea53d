package worker

// eposta_worker.go
// Processes email jobs from QueueEposta: critical-stock alerts and
// trip-report PDFs mailed to the office.

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/infra"

	"github.com/rs/zerolog/log"
)

// EpostaJobPayload is the job envelope sent to QueueEposta.
type EpostaJobPayload struct {
	Kime    string `json:"kime"`
	Konu    string `json:"konu"`
	Govde   string `json:"govde"`
	PDFYolu string `json:"pdf_yolu,omitempty"`
}

// EpostaWorker delivers queued mail via SMTP.
type EpostaWorker struct {
	mailer *infra.Mailer
}

func NewEpostaWorker(mailer *infra.Mailer) *EpostaWorker {
	return &EpostaWorker{mailer: mailer}
}

// Process sends one email, attaching a PDF when the payload names one.
// A returned error sends the job to the DLQ.
func (w *EpostaWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EpostaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return errors.New("eposta_worker: invalid payload: " + err.Error())
	}
	if payload.Kime == "" {
		log.Warn().Msg("eposta_worker: empty recipient — skipping")
		return nil
	}

	if err := w.mailer.SendEposta(payload.Kime, payload.Konu, payload.Govde, payload.PDFYolu); err != nil {
		log.Error().Err(err).Str("kime", payload.Kime).Msg("eposta_worker: send failed")
		return err
	}
	log.Info().Str("kime", payload.Kime).Str("konu", payload.Konu).Msg("eposta_worker: mail sent")
	return nil
}
