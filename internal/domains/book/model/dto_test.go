package model

import (
	"encoding/json"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePatch(t *testing.T, body string) PatchBookRequest {
	t.Helper()
	var req PatchBookRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestBuildBookUpdate(t *testing.T) {
	t.Run("empty body yields empty update", func(t *testing.T) {
		u := BuildBookUpdate(decodePatch(t, `{}`))
		assert.True(t, u.Changes.IsEmpty())
		assert.Nil(t, u.AuthorIDs)
	})

	t.Run("blank and null title are omitted", func(t *testing.T) {
		for _, body := range []string{`{"title":"   "}`, `{"title":""}`, `{"title":null}`} {
			u := BuildBookUpdate(decodePatch(t, body))
			_, ok := u.Changes.Lookup(FieldTitle)
			assert.False(t, ok, body)
		}
	})

	t.Run("null price and status are omitted", func(t *testing.T) {
		u := BuildBookUpdate(decodePatch(t, `{"price":null,"publicationStatus":null}`))
		assert.True(t, u.Changes.IsEmpty())
	})

	t.Run("zero price is a change", func(t *testing.T) {
		u := BuildBookUpdate(decodePatch(t, `{"price":0}`))
		c, ok := u.Changes.Lookup(FieldPrice)
		require.True(t, ok)
		assert.Equal(t, SetPrice{Price: 0}, c)
	})

	t.Run("all scalar fields in request order", func(t *testing.T) {
		u := BuildBookUpdate(decodePatch(t, `{"title":"Go","price":10,"publicationStatus":1}`))
		assert.Equal(t, []string{FieldTitle, FieldPrice, FieldPublicationStatus}, u.Changes.Fields())

		status, ok := RequestedStatus(u.Changes)
		require.True(t, ok)
		assert.Equal(t, StatusPublished, status)
	})

	t.Run("author ids carried when present", func(t *testing.T) {
		u := BuildBookUpdate(decodePatch(t, `{"authorIds":[3,4]}`))
		assert.Equal(t, []int64{3, 4}, u.AuthorIDs)
		assert.True(t, u.Changes.IsEmpty())
	})

	t.Run("null or empty author ids leave the set alone", func(t *testing.T) {
		assert.Empty(t, BuildBookUpdate(decodePatch(t, `{"authorIds":null}`)).AuthorIDs)
		assert.Empty(t, BuildBookUpdate(decodePatch(t, `{"authorIds":[]}`)).AuthorIDs)
	})
}

func TestPatchBookRequest_Validate(t *testing.T) {
	assert.NoError(t, decodePatch(t, `{}`).Validate())
	assert.NoError(t, decodePatch(t, `{"price":null,"publicationStatus":null}`).Validate())

	err := decodePatch(t, `{"price":-1,"publicationStatus":2}`).Validate()
	require.Error(t, err)

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "publicationStatus")
}

func TestPriceUpperBound(t *testing.T) {
	err := decodePatch(t, `{"price":3000000000}`).Validate()
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "price")

	assert.NoError(t, decodePatch(t, `{"price":2147483647}`).Validate())

	var create CreateBookRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Go","price":3000000000,"publicationStatus":0,"authorIds":[1]}`), &create))
	err = create.Validate()
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "price")
}

func TestPatchBookRequest_MatchesPath(t *testing.T) {
	assert.True(t, decodePatch(t, `{}`).MatchesPath(7))
	assert.True(t, decodePatch(t, `{"id":null}`).MatchesPath(7))
	assert.True(t, decodePatch(t, `{"id":7}`).MatchesPath(7))
	assert.False(t, decodePatch(t, `{"id":8}`).MatchesPath(7))
}

func TestCreateBookRequest_Validate(t *testing.T) {
	valid := func() CreateBookRequest {
		price := 100
		status := StatusUnpublished
		return CreateBookRequest{Title: "Go", Price: &price, PublicationStatus: &status, AuthorIDs: []int64{1}}
	}

	assert.NoError(t, valid().Validate())

	tests := []struct {
		name  string
		field string
		mut   func(r *CreateBookRequest)
	}{
		{"id set", "id", func(r *CreateBookRequest) { id := int64(1); r.ID = &id }},
		{"blank title", "title", func(r *CreateBookRequest) { r.Title = "" }},
		{"missing price", "price", func(r *CreateBookRequest) { r.Price = nil }},
		{"negative price", "price", func(r *CreateBookRequest) { p := -5; r.Price = &p }},
		{"missing status", "publicationStatus", func(r *CreateBookRequest) { r.PublicationStatus = nil }},
		{"bad status", "publicationStatus", func(r *CreateBookRequest) { s := PublicationStatus(3); r.PublicationStatus = &s }},
		{"no authors", "authorIds", func(r *CreateBookRequest) { r.AuthorIDs = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mut(&r)

			var errs validation.Errors
			require.ErrorAs(t, r.Validate(), &errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestPublicationStatus(t *testing.T) {
	assert.True(t, StatusUnpublished.CanTransitionTo(StatusPublished))
	assert.True(t, StatusPublished.CanTransitionTo(StatusPublished))
	assert.True(t, StatusUnpublished.CanTransitionTo(StatusUnpublished))
	assert.False(t, StatusPublished.CanTransitionTo(StatusUnpublished))
	assert.Equal(t, "PUBLISHED", StatusPublished.String())
	assert.False(t, PublicationStatus(2).Valid())
}
