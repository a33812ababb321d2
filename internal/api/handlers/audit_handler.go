package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/services"
)

type AuditHandler struct {
	svc services.AuditService
}

func NewAuditHandler(svc services.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

func (h *AuditHandler) ListByEntity(c *gin.Context) {
	out, err := h.svc.ListByEntity(c.Request.Context(), c.Param("entity_type"), c.Param("entity_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
