package handler

import (
	"net/http"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/gin-gonic/gin"
)

type RaporHandler struct{ svc service.RaporService }

func NewRaporHandler(svc service.RaporService) *RaporHandler { return &RaporHandler{svc: svc} }

// SeferRaporu godoc
// @Summary Sefer sonu ozeti
// @Tags raporlar
// @Produce json
// @Param id path int true "Sefer ID"
// @Success 200 {object} dto.SeferRaporuResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/seferler/{id}/rapor [get]
func (h *RaporHandler) SeferRaporu(c *gin.Context) {
	seferID, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.SeferRaporu(c.Request.Context(), seferID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RaporHandler) KoltukIstatistik(c *gin.Context) {
	var filter dto.KoltukIstatistikFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.KoltukIstatistik(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PDFTalep enqueues async rendering; 202 means "queued", not "done".
func (h *RaporHandler) PDFTalep(c *gin.Context) {
	seferID, ok := idParam(c, "id")
	if !ok {
		return
	}
	// Body is optional: an empty POST means "render, don't mail".
	var req dto.RaporPDFRequest
	if c.Request.ContentLength > 0 && !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.PDFTalep(c.Request.Context(), seferID, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"kuyruga_alindi": true, "sefer_id": seferID})
}
