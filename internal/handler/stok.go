package handler

import (
	"net/http"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/gin-gonic/gin"
)

// StokHandler exposes the append-only inventory ledger.
type StokHandler struct{ svc service.StokService }

func NewStokHandler(svc service.StokService) *StokHandler { return &StokHandler{svc: svc} }

// Hareket godoc
// @Summary Stok hareketi ekle (giris / satis / duzeltme)
// @Tags stok
// @Accept json
// @Produce json
// @Param body body dto.StokHareketRequest true "Hareket"
// @Success 201 {object} dto.StokHareketiResponse
// @Failure 409 {object} apierror.APIError "yetersiz stok"
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/stok/hareketler [post]
func (h *StokHandler) Hareket(c *gin.Context) {
	var req dto.StokHareketRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Hareket(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *StokHandler) Hareketler(c *gin.Context) {
	var filter dto.StokFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Hareketler(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MevcutStok returns SUM(miktar) for one product, cache-assisted.
func (h *StokHandler) MevcutStok(c *gin.Context) {
	urunID, ok := idParam(c, "id")
	if !ok {
		return
	}
	mevcut, err := h.svc.MevcutStok(c.Request.Context(), urunID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MevcutStokResponse{UrunID: urunID, MevcutStok: mevcut})
}

// KritikStoklar lists active products at or under their threshold.
func (h *StokHandler) KritikStoklar(c *gin.Context) {
	resp, err := h.svc.KritikStoklar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if resp == nil {
		resp = []dto.KritikUrunResponse{}
	}
	c.JSON(http.StatusOK, resp)
}
