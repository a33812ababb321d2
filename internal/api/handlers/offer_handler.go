package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/models"
	"github.com/talentflow/talentflow/internal/services"
	"github.com/talentflow/talentflow/internal/utils"
)

type OfferHandler struct {
	svc services.OfferService
}

func NewOfferHandler(svc services.OfferService) *OfferHandler {
	return &OfferHandler{svc: svc}
}

type SubmitOfferRequest struct {
	ApplicationID string          `json:"application_id" binding:"required"`
	OfferDetails  json.RawMessage `json:"offer_details" binding:"required"`
}

func (h *OfferHandler) Submit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req SubmitOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "OfferHandler.Submit", "invalid request body", err))
		return
	}

	offer, err := h.svc.Submit(c.Request.Context(), req.ApplicationID, req.OfferDetails, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offer)
}

type DecideOfferRequest struct {
	Status   models.Decision `json:"status" binding:"required"`
	Comments string          `json:"comments"`
}

// Decide records the calling role's gate verdict. The service enforces
// gate order; the route's middleware already guarantees an approver role.
func (h *OfferHandler) Decide(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	role, ok := callerRole(c)
	if !ok {
		return
	}

	var req DecideOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "OfferHandler.Decide", "invalid request body", err))
		return
	}

	offer, err := h.svc.Decide(c.Request.Context(), c.Param("id"), userID, role, req.Status, req.Comments)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *OfferHandler) ListByApplication(c *gin.Context) {
	out, err := h.svc.ListByApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
