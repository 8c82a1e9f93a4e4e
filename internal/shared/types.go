package shared

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Task types handled by the worker
const (
	TypeBookPublished = "book:published"
	TypeCatalogAudit  = "catalog:audit"
)

// BookPublishedPayload is enqueued after a book becomes published
type BookPublishedPayload struct {
	BookID      int64     `json:"bookId"`
	Title       string    `json:"title"`
	AuthorIDs   []int64   `json:"authorIds"`
	PublishedAt time.Time `json:"publishedAt"`
}

// DateLayout is the wire and storage format of calendar dates
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day, normalised to UTC midnight.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the clock part of t, keeping t's calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string in %s format", DateLayout)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
