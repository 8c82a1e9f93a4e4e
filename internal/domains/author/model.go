package author

import (
	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared"
)

// Author represents the core Author entity.
// (name, birth date) is unique across the catalog.
type Author struct {
	ID        int64       `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	BirthDate shared.Date `json:"birthDate" db:"birth_date"`
}

// AuthorWithBooks is an author with every book they are credited on
type AuthorWithBooks struct {
	Author
	Books []model.Book `json:"books"`
}
