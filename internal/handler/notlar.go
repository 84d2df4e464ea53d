package handler

import (
	"net/http"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/gin-gonic/gin"
)

type NotHandler struct{ svc service.NotService }

func NewNotHandler(svc service.NotService) *NotHandler { return &NotHandler{svc: svc} }

func (h *NotHandler) Ekle(c *gin.Context) {
	seferID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.EkleNotRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Ekle(c.Request.Context(), seferID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *NotHandler) SeferNotlari(c *gin.Context) {
	seferID, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.SeferNotlari(c.Request.Context(), seferID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
