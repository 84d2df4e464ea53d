package handler

import (
	"net/http"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/gin-gonic/gin"
)

type SeferHandler struct{ svc service.SeferService }

func NewSeferHandler(svc service.SeferService) *SeferHandler { return &SeferHandler{svc: svc} }

// Olustur godoc
// @Summary Yeni sefer ac
// @Tags seferler
// @Accept json
// @Produce json
// @Param body body dto.OlusturSeferRequest true "Sefer bilgileri"
// @Success 201 {object} dto.SeferResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/seferler [post]
func (h *SeferHandler) Olustur(c *gin.Context) {
	var req dto.OlusturSeferRequest
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

func (h *SeferHandler) Getir(c *gin.Context) {
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

func (h *SeferHandler) Listele(c *gin.Context) {
	var filter dto.SeferFilter
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
