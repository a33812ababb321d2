package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/services"
)

type ReportHandler struct {
	svc services.ReportService
}

func NewReportHandler(svc services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	out, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) TimeToHire(c *gin.Context) {
	out, err := h.svc.TimeToHire(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) ConversionRates(c *gin.Context) {
	out, err := h.svc.ConversionRates(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
