package handler

import (
	"net/http"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/apierror"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/gin-gonic/gin"
)

// HatHandler exposes the route catalog and fare table.
type HatHandler struct{ svc service.HatService }

func NewHatHandler(svc service.HatService) *HatHandler { return &HatHandler{svc: svc} }

func (h *HatHandler) Olustur(c *gin.Context) {
	var req dto.OlusturHatRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Olustur(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *HatHandler) Getir(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Getir(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HatHandler) Listele(c *gin.Context) {
	hepsi := c.Query("hepsi") == "true"
	resp, err := h.svc.Listele(c.Request.Context(), hepsi)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HatHandler) Guncelle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.GuncelleHatRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Guncelle(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HatHandler) Deaktive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Deaktive(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HatHandler) TarifeUpsert(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.TarifeUpsertRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.TarifeUpsert(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HatHandler) TarifeListele(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.TarifeListele(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UcretHesapla godoc
// @Summary Durak cifti icin ucret teklifi
// @Tags hatlar
// @Produce json
// @Param hat query string true "Hat adi"
// @Param binis query string true "Binis duragi"
// @Param inis query string true "Inis duragi"
// @Success 200 {object} dto.UcretHesaplaResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/tarife/hesapla [get]
func (h *HatHandler) UcretHesapla(c *gin.Context) {
	hat := c.Query("hat")
	binis := c.Query("binis")
	inis := c.Query("inis")
	if hat == "" || binis == "" || inis == "" {
		c.JSON(http.StatusBadRequest, apierror.New("hat, binis ve inis gerekli"))
		return
	}
	resp, err := h.svc.UcretHesapla(c.Request.Context(), hat, binis, inis)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
