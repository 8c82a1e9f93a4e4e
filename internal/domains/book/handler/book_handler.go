package handler

import (
	"net/http"
	"strconv"

	"catalog-backend/internal/domains/book/model"
	service "catalog-backend/internal/domains/book/service"
	"catalog-backend/internal/shared/apperror"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Handler - HTTP Handler (single file)
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateBook - POST /api/v1/books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	book, err := h.service.Register(c.Request.Context(), req.ToBook(), req.AuthorIDs)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Book created successfully", book.ToResponse())
}

// PatchBook - PATCH /api/v1/books/:id
// Absent fields are left alone; see model.BuildBookUpdate.
func (h *Handler) PatchBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.PatchBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !req.MatchesPath(id) {
		response.AppError(c, apperror.InvalidArgument(apperror.EntityBook, "id", model.ErrMsgIDMismatch))
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	book, err := h.service.Update(c.Request.Context(), id, model.BuildBookUpdate(req))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Book updated successfully", book.ToResponse())
}

// GetBookByID - GET /api/v1/books/:id
func (h *Handler) GetBookByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	book, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get book successfully", book.ToResponse())
}

func (h *Handler) fail(c *gin.Context, err error) {
	if apperror.KindOf(err) == apperror.KindUnexpected {
		log.Error().Err(err).Str("request_id", c.GetString(middleware.ContextRequestID)).Msg("book request failed")
	}
	response.AppError(c, err)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid book id")
		return 0, false
	}
	return id, true
}
