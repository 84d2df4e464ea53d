package handler

import (
	"net/http"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/gin-gonic/gin"
)

// PersonelHandler manages crew accounts. All routes require the yonetici role.
type PersonelHandler struct{ svc service.AuthService }

func NewPersonelHandler(svc service.AuthService) *PersonelHandler {
	return &PersonelHandler{svc: svc}
}

func (h *PersonelHandler) Olustur(c *gin.Context) {
	var req dto.OlusturPersonelRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.PersonelOlustur(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PersonelHandler) Listele(c *gin.Context) {
	hepsi := c.Query("hepsi") == "true"
	resp, err := h.svc.PersonelListele(c.Request.Context(), hepsi)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PersonelHandler) Guncelle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.GuncellePersonelRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.PersonelGuncelle(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PersonelHandler) Deaktive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.PersonelDeaktive(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PersonelHandler) Reaktive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.PersonelReaktive(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
