package handler

import (
	"net/http"
	"strconv"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/apierror"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/gin-gonic/gin"
)

// KoltukHandler exposes the seat map. The snapshot body uses the pinned wire
// names (stop / paymentMethod / fare) keyed by seat number as a string.
type KoltukHandler struct{ svc service.KoltukService }

func NewKoltukHandler(svc service.KoltukService) *KoltukHandler {
	return &KoltukHandler{svc: svc}
}

// Harita godoc
// @Summary Dolu koltuk haritasi
// @Tags koltuklar
// @Produce json
// @Param id path int true "Sefer ID"
// @Success 200 {object} dto.KoltukHaritasi
// @Failure 404 {object} apierror.APIError
// @Router /v1/seferler/{id}/koltuklar [get]
func (h *KoltukHandler) Harita(c *gin.Context) {
	seferID, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.DoluKoltuklar(c.Request.Context(), seferID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Ata assigns (or fully replaces) the seat. Last write wins.
func (h *KoltukHandler) Ata(c *gin.Context) {
	seferID, ok := idParam(c, "id")
	if !ok {
		return
	}
	koltukNo, ok := koltukNoParam(c)
	if !ok {
		return
	}
	var req dto.AtaKoltukRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Ata(c.Request.Context(), seferID, koltukNo, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Bosalt clears the seat. 204 also when it was already vacant.
func (h *KoltukHandler) Bosalt(c *gin.Context) {
	seferID, ok := idParam(c, "id")
	if !ok {
		return
	}
	koltukNo, ok := koltukNoParam(c)
	if !ok {
		return
	}
	if err := h.svc.Bosalt(c.Request.Context(), seferID, koltukNo); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func koltukNoParam(c *gin.Context) (int, bool) {
	no, err := strconv.Atoi(c.Param("no"))
	if err != nil || no < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("Gecersiz koltuk numarasi"))
		return 0, false
	}
	return no, true
}
