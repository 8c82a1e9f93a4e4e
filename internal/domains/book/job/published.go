package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/domains/book/model"
	bookService "catalog-backend/internal/domains/book/service"
	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/apperror"
)

// Enqueuer is the subset of *asynq.Client used to publish tasks
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Publisher turns book publications into book:published tasks
type Publisher struct {
	client Enqueuer
	queue  string
	now    func() time.Time
}

var _ bookService.EventPublisher = (*Publisher)(nil)

func NewPublisher(client Enqueuer, queue string) *Publisher {
	return &Publisher{client: client, queue: queue, now: time.Now}
}

func (p *Publisher) BookPublished(ctx context.Context, book model.BookWithAuthors) error {
	payload, err := json.Marshal(shared.BookPublishedPayload{
		BookID:      book.ID,
		Title:       book.Title,
		AuthorIDs:   book.AuthorIDs,
		PublishedAt: p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	info, err := p.client.EnqueueContext(ctx,
		asynq.NewTask(shared.TypeBookPublished, payload),
		asynq.Queue(p.queue),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", shared.TypeBookPublished, err)
	}

	log.Debug().
		Str("task_id", info.ID).
		Int64("book_id", book.ID).
		Msg("book:published enqueued")
	return nil
}

// BookPublishedHandler consumes book:published tasks
type BookPublishedHandler struct {
	books bookService.ServiceInterface
}

func NewBookPublishedHandler(books bookService.ServiceInterface) *BookPublishedHandler {
	return &BookPublishedHandler{books: books}
}

// ProcessTask re-reads the book and records the publication. A book that
// no longer exists is not retried.
func (h *BookPublishedHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.BookPublishedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal BookPublished payload")
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	book, err := h.books.Get(ctx, payload.BookID)
	if err != nil {
		if errors.Is(err, apperror.NotFound(apperror.EntityBook)) {
			log.Warn().Int64("book_id", payload.BookID).Msg("published book no longer exists")
			return fmt.Errorf("book %d: %w", payload.BookID, asynq.SkipRetry)
		}
		return fmt.Errorf("load book %d: %w", payload.BookID, err)
	}

	log.Info().
		Int64("book_id", book.ID).
		Str("title", book.Title).
		Ints64("author_ids", book.AuthorIDs).
		Time("published_at", payload.PublishedAt).
		Msg("Book published")

	return nil
}
