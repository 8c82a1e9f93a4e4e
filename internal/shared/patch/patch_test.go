package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	Name      Optional[string]  `json:"name"`
	Price     Optional[int]     `json:"price"`
	AuthorIDs Optional[[]int64] `json:"authorIds"`
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	t.Run("absent keys stay absent", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{}`), &b))

		assert.False(t, b.Name.Present)
		assert.False(t, b.Price.Present)
		assert.False(t, b.AuthorIDs.Present)
	})

	t.Run("explicit null is present and null", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"name":null,"authorIds":null}`), &b))

		assert.True(t, b.Name.Present)
		assert.True(t, b.Name.Null)
		assert.True(t, b.AuthorIDs.Present)
		assert.True(t, b.AuthorIDs.Null)
		assert.False(t, b.Price.Present)
	})

	t.Run("values are decoded", func(t *testing.T) {
		var b body
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Ann","price":0,"authorIds":[1,2]}`), &b))

		name, ok := b.Name.Get()
		assert.True(t, ok)
		assert.Equal(t, "Ann", name)

		price, ok := b.Price.Get()
		assert.True(t, ok)
		assert.Equal(t, 0, price)

		assert.Equal(t, []int64{1, 2}, b.AuthorIDs.Value)
	})

	t.Run("type mismatch fails", func(t *testing.T) {
		var b body
		assert.Error(t, json.Unmarshal([]byte(`{"price":"ten"}`), &b))
	})

	t.Run("marshal round trip of set and null", func(t *testing.T) {
		out, err := json.Marshal(body{Name: Some("x"), Price: Null[int]()})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"x","price":null,"authorIds":null}`, string(out))
	})
}

func TestInclude(t *testing.T) {
	tests := []struct {
		name string
		opt  Optional[string]
		rule Rule
		want bool
	}{
		{"blank rule absent", Absent[string](), OmitIfBlank, false},
		{"blank rule null", Null[string](), OmitIfBlank, false},
		{"blank rule empty", Some(""), OmitIfBlank, false},
		{"blank rule whitespace", Some(" \t\n"), OmitIfBlank, false},
		{"blank rule value", Some("Ann"), OmitIfBlank, true},
		{"null rule absent", Absent[string](), OmitIfNull, false},
		{"null rule null", Null[string](), OmitIfNull, false},
		{"null rule empty string", Some(""), OmitIfNull, true},
		{"present rule absent", Absent[string](), IncludeWhenPresent, false},
		{"present rule null", Null[string](), IncludeWhenPresent, true},
		{"present rule value", Some("x"), IncludeWhenPresent, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Include(tt.opt, tt.rule))
		})
	}

	t.Run("zero int is not blank", func(t *testing.T) {
		assert.True(t, Include(Some(0), OmitIfBlank))
	})

	t.Run("unknown rule panics", func(t *testing.T) {
		assert.Panics(t, func() { Include(Some("x"), Rule(42)) })
	})
}

type fieldChange struct {
	name string
	val  int
}

func (f fieldChange) Field() string { return f.name }

func TestChangeSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		var cs ChangeSet[fieldChange]
		assert.True(t, cs.IsEmpty())
		assert.Empty(t, cs.Changes())
	})

	t.Run("same field replaces in place", func(t *testing.T) {
		cs := NewChangeSet(
			fieldChange{"title", 1},
			fieldChange{"price", 2},
			fieldChange{"title", 3},
		)

		assert.Equal(t, 2, cs.Len())
		assert.Equal(t, []string{"title", "price"}, cs.Fields())

		c, ok := cs.Lookup("title")
		require.True(t, ok)
		assert.Equal(t, 3, c.val)

		_, ok = cs.Lookup("status")
		assert.False(t, ok)
	})

	t.Run("changes returns a copy", func(t *testing.T) {
		cs := NewChangeSet(fieldChange{"title", 1})
		got := cs.Changes()
		got[0].val = 99

		c, _ := cs.Lookup("title")
		assert.Equal(t, 1, c.val)
	})
}
