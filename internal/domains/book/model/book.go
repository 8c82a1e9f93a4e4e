package model

import (
	"fmt"
	"math"
)

// MaxPrice is the largest price the INTEGER price column holds
const MaxPrice = math.MaxInt32

// PublicationStatus of a book. Once published a book never goes back.
type PublicationStatus int

const (
	StatusUnpublished PublicationStatus = 0
	StatusPublished   PublicationStatus = 1
)

func (s PublicationStatus) Valid() bool {
	return s == StatusUnpublished || s == StatusPublished
}

func (s PublicationStatus) String() string {
	switch s {
	case StatusUnpublished:
		return "UNPUBLISHED"
	case StatusPublished:
		return "PUBLISHED"
	default:
		return fmt.Sprintf("PublicationStatus(%d)", int(s))
	}
}

// CanTransitionTo reports whether a stored status may be replaced by next.
func (s PublicationStatus) CanTransitionTo(next PublicationStatus) bool {
	return !(s == StatusPublished && next == StatusUnpublished)
}

type Book struct {
	ID                int64             `json:"id" db:"id"`
	Title             string            `json:"title" db:"title"`
	Price             int               `json:"price" db:"price"`
	PublicationStatus PublicationStatus `json:"publicationStatus" db:"publication_status"`
}

// BookWithAuthors is a book together with its current authorship set
type BookWithAuthors struct {
	Book
	AuthorIDs []int64 `json:"authorIds"`
}
