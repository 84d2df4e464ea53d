package handler

import (
	"net/http"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/gin-gonic/gin"
)

type UrunHandler struct{ svc service.UrunService }

func NewUrunHandler(svc service.UrunService) *UrunHandler { return &UrunHandler{svc: svc} }

func (h *UrunHandler) Olustur(c *gin.Context) {
	var req dto.OlusturUrunRequest
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

func (h *UrunHandler) Getir(c *gin.Context) {
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

func (h *UrunHandler) Listele(c *gin.Context) {
	hepsi := c.Query("hepsi") == "true"
	resp, err := h.svc.Listele(c.Request.Context(), hepsi)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UrunHandler) Guncelle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.GuncelleUrunRequest
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

func (h *UrunHandler) Deaktive(c *gin.Context) {
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

func (h *UrunHandler) Reaktive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Reaktive(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
