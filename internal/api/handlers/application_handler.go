package handlers

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/models"
	"github.com/talentflow/talentflow/internal/services"
	"github.com/talentflow/talentflow/internal/utils"
)

// Accepted document types for public submissions. The content type stored
// alongside the file comes from this table, not from the client.
var allowedDocTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type ApplicationHandler struct {
	svc      services.ApplicationService
	maxBytes int64
}

func NewApplicationHandler(svc services.ApplicationService, maxUploadBytes int64) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, maxBytes: maxUploadBytes}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context(), c.Query("job_id"), models.Stage(c.Query("stage")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Submit is the public application endpoint: multipart form with candidate
// fields plus optional resume and coverLetter files. File validation runs
// before any row is written.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	const op = "ApplicationHandler.Submit"

	name := c.PostForm("name")
	email := c.PostForm("email")
	phone := c.PostForm("phone")
	jobID := c.PostForm("job_id")
	if name == "" || email == "" || jobID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "name, email, and job_id are required", nil))
		return
	}

	resume, closeResume, err := h.openDocument(c, "resume")
	if err != nil {
		writeError(c, err)
		return
	}
	if closeResume != nil {
		defer closeResume()
	}

	cover, closeCover, err := h.openDocument(c, "coverLetter")
	if err != nil {
		writeError(c, err)
		return
	}
	if closeCover != nil {
		defer closeCover()
	}

	app, err := h.svc.Submit(c.Request.Context(), services.SubmitApplicationInput{
		Name:        name,
		Email:       email,
		Phone:       phone,
		JobID:       jobID,
		Resume:      resume,
		CoverLetter: cover,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "application submitted",
		"application": app,
	})
}

type UpdateStageRequest struct {
	Stage models.Stage `json:"stage" binding:"required"`
}

func (h *ApplicationHandler) UpdateStage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.UpdateStage", "invalid request body", err))
		return
	}

	app, err := h.svc.SetStage(c.Request.Context(), c.Param("id"), req.Stage, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// openDocument validates and opens an optional multipart file field. A
// missing field returns (nil, nil, nil).
func (h *ApplicationHandler) openDocument(c *gin.Context, field string) (*services.Document, func(), error) {
	const op = "ApplicationHandler.Submit"

	fh, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil, nil
		}
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, fmt.Sprintf("invalid multipart field %q", field), err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType, ok := allowedDocTypes[ext]
	if !ok {
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, "only pdf, doc, and docx files are allowed", nil)
	}
	if fh.Size <= 0 || fh.Size > h.maxBytes {
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, fmt.Sprintf("file exceeds the %d byte limit", h.maxBytes), nil)
	}

	file, err := fh.Open()
	if err != nil {
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to open upload", err)
	}

	reader, err := sniffDocument(file, ext)
	if err != nil {
		_ = file.Close()
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, "file content does not match its extension", err)
	}

	doc := &services.Document{
		FileName:    fh.Filename,
		ContentType: contentType,
		Reader:      reader,
	}
	return doc, func() { _ = file.Close() }, nil
}

// sniffDocument reads the first 512 bytes to verify the content matches the
// claimed extension, then re-composes the stream. Word formats have no
// single stable sniff result, so only PDFs are checked strictly.
func sniffDocument(file multipart.File, ext string) (io.Reader, error) {
	head := make([]byte, 512)
	n, _ := file.Read(head)
	head = head[:n]

	if ext == ".pdf" && http.DetectContentType(head) != "application/pdf" {
		return nil, fmt.Errorf("not a pdf")
	}

	return &readJoin{a: bytes.NewReader(head), b: file}, nil
}

type readJoin struct {
	a *bytes.Reader
	b io.Reader
}

func (r *readJoin) Read(p []byte) (int, error) {
	if r.a != nil && r.a.Len() > 0 {
		return r.a.Read(p)
	}
	return r.b.Read(p)
}
