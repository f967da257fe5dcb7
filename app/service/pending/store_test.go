package pending

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateMergesFields(t *testing.T) {
	store := NewStore()

	store.Update("s1", "Alex", "", "")
	store.Update("s1", "", "alex@example.com", "")

	lead := store.Get("s1")
	assert.Equal(t, "Alex", lead.Name)
	assert.Equal(t, "alex@example.com", lead.Email)
	assert.Empty(t, lead.Interest)
}

func TestUpdateDoesNotEraseWithEmpty(t *testing.T) {
	store := NewStore()

	store.Update("s1", "Alex", "alex@example.com", "solar project")
	store.Update("s1", "", "", "")

	lead := store.Get("s1")
	assert.Equal(t, "Alex", lead.Name)
	assert.Equal(t, "alex@example.com", lead.Email)
	assert.Equal(t, "solar project", lead.Interest)
}

func TestGetReturnsZeroWithoutCreating(t *testing.T) {
	store := NewStore()

	assert.True(t, store.Get("unknown").Empty())
	assert.False(t, store.Complete("unknown"))
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name     string
		lead     Lead
		complete bool
	}{
		{"email and name", Lead{Name: "Alex", Email: "a@b.io"}, true},
		{"email and interest", Lead{Email: "a@b.io", Interest: "solar"}, true},
		{"email only", Lead{Email: "a@b.io"}, false},
		{"name only", Lead{Name: "Alex"}, false},
		{"name and interest, no email", Lead{Name: "Alex", Interest: "solar"}, false},
		{"empty", Lead{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.complete, tt.lead.Complete())
		})
	}
}

func TestClear(t *testing.T) {
	store := NewStore()

	store.Update("s1", "Alex", "alex@example.com", "")
	store.Clear("s1")

	assert.True(t, store.Get("s1").Empty())
}

func TestSessionsArePartitioned(t *testing.T) {
	store := NewStore()

	store.Update("s1", "Alex", "", "")
	store.Update("s2", "", "sam@example.com", "")

	assert.Equal(t, "Alex", store.Get("s1").Name)
	assert.Empty(t, store.Get("s1").Email)
	assert.Equal(t, "sam@example.com", store.Get("s2").Email)
}
