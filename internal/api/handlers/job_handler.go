package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/models"
	"github.com/talentflow/talentflow/internal/services"
	"github.com/talentflow/talentflow/internal/utils"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

func (h *JobHandler) List(c *gin.Context) {
	status := models.JobStatus(c.Query("status"))
	department := c.Query("department")

	out, err := h.svc.List(c.Request.Context(), status, department)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *JobHandler) Get(c *gin.Context) {
	j, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

type JobRequest struct {
	Title       string           `json:"title" binding:"required"`
	Department  string           `json:"department" binding:"required"`
	Description string           `json:"description"`
	Status      models.JobStatus `json:"status"`
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Create", "invalid request body", err))
		return
	}

	j, err := h.svc.Create(c.Request.Context(), services.CreateJobInput{
		Title:       req.Title,
		Department:  req.Department,
		Description: req.Description,
		Status:      req.Status,
		CreatedBy:   userID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, j)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Update", "invalid request body", err))
		return
	}

	j, err := h.svc.Update(c.Request.Context(), c.Param("id"), services.UpdateJobInput{
		Title:       req.Title,
		Department:  req.Department,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job deleted"})
}
