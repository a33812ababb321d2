package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/services"
	"github.com/talentflow/talentflow/internal/utils"
)

type InterviewHandler struct {
	svc services.InterviewService
}

func NewInterviewHandler(svc services.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

type ScheduleInterviewRequest struct {
	ApplicationID string    `json:"application_id" binding:"required"`
	InterviewType string    `json:"interview_type" binding:"required"`
	InterviewerID string    `json:"interviewer_id" binding:"required"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	Notes         string    `json:"notes"`
}

func (h *InterviewHandler) Schedule(c *gin.Context) {
	var req ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Schedule", "invalid request body", err))
		return
	}

	row, err := h.svc.Schedule(c.Request.Context(), services.ScheduleInterviewInput{
		ApplicationID: req.ApplicationID,
		InterviewType: req.InterviewType,
		InterviewerID: req.InterviewerID,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *InterviewHandler) ListByApplication(c *gin.Context) {
	out, err := h.svc.ListByApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type BypassRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *InterviewHandler) Bypass(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req BypassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Bypass", "invalid request body", err))
		return
	}

	row, err := h.svc.Bypass(c.Request.Context(), c.Param("id"), userID, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
