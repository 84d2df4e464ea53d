package handler

import (
	"net/http"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/gin-gonic/gin"
)

// KasaHandler exposes the append-only cash ledger.
type KasaHandler struct{ svc service.KasaService }

func NewKasaHandler(svc service.KasaService) *KasaHandler { return &KasaHandler{svc: svc} }

// Kaydet godoc
// @Summary Kasa hareketi ekle
// @Tags kasa
// @Accept json
// @Produce json
// @Param body body dto.KaydetKasaRequest true "Hareket"
// @Success 201 {object} dto.KasaHareketiResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/kasa [post]
func (h *KasaHandler) Kaydet(c *gin.Context) {
	var req dto.KaydetKasaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Kaydet(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *KasaHandler) Listele(c *gin.Context) {
	var filter dto.KasaFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listele(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SeferHareketleri lists the ledger entries recorded against one trip.
func (h *KasaHandler) SeferHareketleri(c *gin.Context) {
	seferID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var filter dto.KasaFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	filter.SeferID = &seferID
	resp, err := h.svc.Listele(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SeferOzeti returns recomputed totals — gelir, gider, net — for one trip.
func (h *KasaHandler) SeferOzeti(c *gin.Context) {
	seferID, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.SeferOzeti(c.Request.Context(), seferID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
