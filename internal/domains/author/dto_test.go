package author

import (
	"encoding/json"
	"testing"
	"time"

	"catalog-backend/internal/shared"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePatch(t *testing.T, body string) PatchAuthorRequest {
	t.Helper()
	var req PatchAuthorRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestBuildAuthorChangeSet(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{"empty body", `{}`, []string{}},
		{"blank name omitted", `{"name":"  "}`, []string{}},
		{"null name omitted", `{"name":null}`, []string{}},
		{"null birth date omitted", `{"birthDate":null}`, []string{}},
		{"name only", `{"name":"Ann"}`, []string{FieldName}},
		{"both", `{"name":"Ann","birthDate":"1970-01-02"}`, []string{FieldName, FieldBirthDate}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := BuildAuthorChangeSet(decodePatch(t, tt.body))
			assert.Equal(t, tt.fields, cs.Fields())
		})
	}

	t.Run("values are typed", func(t *testing.T) {
		cs := BuildAuthorChangeSet(decodePatch(t, `{"name":"Ann","birthDate":"1970-01-02"}`))

		c, ok := cs.Lookup(FieldBirthDate)
		require.True(t, ok)
		assert.Equal(t, SetBirthDate{BirthDate: shared.NewDate(1970, time.January, 2)}, c)
	})
}

func TestCreateAuthorRequest_Validate(t *testing.T) {
	past := shared.NewDate(1950, time.May, 1)
	future := shared.DateOf(time.Now().AddDate(1, 0, 0))
	today := shared.DateOf(time.Now())
	id := int64(3)

	assert.NoError(t, CreateAuthorRequest{Name: "Ann", BirthDate: &past}.Validate())

	tests := []struct {
		name  string
		req   CreateAuthorRequest
		field string
	}{
		{"blank name", CreateAuthorRequest{Name: "", BirthDate: &past}, "name"},
		{"missing birth date", CreateAuthorRequest{Name: "Ann"}, "birthDate"},
		{"future birth date", CreateAuthorRequest{Name: "Ann", BirthDate: &future}, "birthDate"},
		{"birth date today", CreateAuthorRequest{Name: "Ann", BirthDate: &today}, "birthDate"},
		{"id set", CreateAuthorRequest{ID: &id, Name: "Ann", BirthDate: &past}, "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errs validation.Errors
			require.ErrorAs(t, tt.req.Validate(), &errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestPatchAuthorRequest_Validate(t *testing.T) {
	assert.NoError(t, decodePatch(t, `{}`).Validate())
	assert.NoError(t, decodePatch(t, `{"birthDate":null}`).Validate())
	assert.NoError(t, decodePatch(t, `{"birthDate":"1960-10-10"}`).Validate())

	var errs validation.Errors
	require.ErrorAs(t, decodePatch(t, `{"birthDate":"2999-01-01"}`).Validate(), &errs)
	assert.Contains(t, errs, "birthDate")
}

func TestPatchAuthorRequest_MatchesPath(t *testing.T) {
	assert.True(t, decodePatch(t, `{"id":null}`).MatchesPath(1))
	assert.False(t, decodePatch(t, `{"id":2}`).MatchesPath(1))
}
