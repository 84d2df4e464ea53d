package handler

import (
	"net/http"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/gin-gonic/gin"
)

// SatisHandler exposes the composed on-board sale: stock move + cash entry
// in one transaction.
type SatisHandler struct{ svc service.SatisService }

func NewSatisHandler(svc service.SatisService) *SatisHandler { return &SatisHandler{svc: svc} }

// Sat godoc
// @Summary Bufe satisi kaydet
// @Tags satis
// @Accept json
// @Produce json
// @Param body body dto.SatisRequest true "Satis"
// @Success 201 {object} dto.SatisResponse
// @Failure 409 {object} apierror.APIError "yetersiz stok"
// @Router /v1/satis [post]
func (h *SatisHandler) Sat(c *gin.Context) {
	var req dto.SatisRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Sat(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusCreated
	if resp.Tekrar {
		// Idempotent replay — nothing new was written.
		status = http.StatusOK
	}
	c.JSON(status, resp)
}
