package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/domains/author"
	"catalog-backend/internal/shared/apperror"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	created, err := h.service.Register(c.Request.Context(), req.ToAuthor())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Create author successfully", created.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// PATCH: PATCH /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req author.PatchAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !req.MatchesPath(id) {
		response.AppError(c, apperror.InvalidArgument(apperror.EntityAuthor, "id", author.ErrMsgIDMismatch))
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	updated, err := h.service.PartialUpdate(c.Request.Context(), id, author.BuildAuthorChangeSet(req))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Update author successfully", updated.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get author successfully", a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/v1/authors/:id/books
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetWithBooks(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetWithBooks(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get author books successfully", a.ToResponse())
}

func (h *AuthorHandler) fail(c *gin.Context, err error) {
	if apperror.KindOf(err) == apperror.KindUnexpected {
		log.Error().Err(err).Str("request_id", c.GetString(middleware.ContextRequestID)).Msg("author request failed")
	}
	response.AppError(c, err)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
