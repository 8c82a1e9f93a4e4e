package main

import (
	"github.com/hibiken/asynq"

	bookJob "catalog-backend/internal/domains/book/job"
	"catalog-backend/internal/shared"
	"catalog-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	bookPublished *bookJob.BookPublishedHandler
	audit         *bookJob.AuditHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		bookPublished: bookJob.NewBookPublishedHandler(c.BookService),
		audit:         bookJob.NewAuditHandler(c.Store),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeBookPublished, h.bookPublished.ProcessTask)
	mux.HandleFunc(shared.TypeCatalogAudit, h.audit.ProcessTask)
}
