package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-server/internal/apierrors"
	"voice-server/internal/knowledge/processor"
	"voice-server/internal/observability"
)

type Handler struct {
	processor processor.KnowledgeProcessor
	logger    *observability.Logger
}

func New(processor processor.KnowledgeProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

func (h Handler) getAgentID(c *gin.Context) (uuid.UUID, bool) {
	agentID, err := uuid.Parse(c.Param("agent_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid agent ID"))
		return uuid.Nil, false
	}
	return agentID, true
}

// HandleUploadFiles stores the multipart "files" parts as knowledge
// base documents
func (h Handler) HandleUploadFiles(c *gin.Context) {
	ctx := c.Request.Context()

	agentID, ok := h.getAgentID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "multipart form is required"))
		return
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "files form field is required"))
		return
	}

	uploads := make([]processor.FileUpload, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		file, err := fileHeader.Open()
		if err != nil {
			apierrors.RespondWithError(c, err)
			return
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			apierrors.RespondWithError(c, err)
			return
		}
		uploads = append(uploads, processor.FileUpload{
			Filename: fileHeader.Filename,
			Content:  string(content),
		})
	}

	files, err := h.processor.UploadFiles(ctx, agentID, uploads)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "files uploaded", "files": files})
}

// HandleListFiles lists the agent's knowledge base documents
func (h Handler) HandleListFiles(c *gin.Context) {
	ctx := c.Request.Context()

	agentID, ok := h.getAgentID(c)
	if !ok {
		return
	}

	files, err := h.processor.ListFiles(ctx, agentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

// HandleDeleteFile removes one document by filename
func (h Handler) HandleDeleteFile(c *gin.Context) {
	ctx := c.Request.Context()

	agentID, ok := h.getAgentID(c)
	if !ok {
		return
	}
	filename := c.Query("filename")
	if filename == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "filename query parameter is required"))
		return
	}

	if err := h.processor.DeleteFile(ctx, agentID, filename); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file deleted", "filename": filename})
}

// HandleGetKnowledgeBase summarizes the agent's knowledge base
func (h Handler) HandleGetKnowledgeBase(c *gin.Context) {
	ctx := c.Request.Context()

	agentID, ok := h.getAgentID(c)
	if !ok {
		return
	}

	kb, err := h.processor.GetKnowledgeBase(ctx, agentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, kb)
}

// HandleRetrieve returns the knowledge base passages most relevant to
// the query
func (h Handler) HandleRetrieve(c *gin.Context) {
	ctx := c.Request.Context()

	agentID, ok := h.getAgentID(c)
	if !ok {
		return
	}
	query := c.Query("query")
	if query == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "query parameter is required"))
		return
	}

	retrievalLen := processor.DefaultRetrievalLen
	if raw := c.Query("retrieval_len"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "retrieval_len must be a positive integer"))
			return
		}
		retrievalLen = parsed
	}

	result, err := h.processor.Retrieve(ctx, agentID, query, retrievalLen)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
