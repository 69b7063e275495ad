package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByLTRB(t *testing.T) {
	r := ByLTRB(5, 6, 1, 2)
	assert.Equal(t, ByLTWH(1, 2, 5, 5), r)
	assert.Equal(t, 5, r.Right())
	assert.Equal(t, 6, r.Bottom())
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
		ok   bool
	}{
		{"inside", ByLTWH(0, 0, 10, 10), ByLTWH(2, 2, 3, 3), ByLTWH(2, 2, 3, 3), true},
		{"partial", ByLTWH(0, 0, 4, 4), ByLTWH(2, -2, 4, 4), ByLTRB(2, 0, 3, 1), true},
		{"touching corner", ByLTWH(0, 0, 2, 2), ByLTWH(1, 1, 2, 2), ByLTWH(1, 1, 1, 1), true},
		{"disjoint", ByLTWH(0, 0, 2, 2), ByLTWH(2, 0, 2, 2), Rect{}, false},
		{"empty", ByLTWH(0, 0, 0, 2), ByLTWH(0, 0, 2, 2), Rect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Overlap(tt.b)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, tt.b.IsOverlapped(tt.a))
		})
	}
}

func TestContains(t *testing.T) {
	r := ByLTWH(-2, -2, 3, 3)
	assert.True(t, r.Contains(Pt(-2, -2)))
	assert.True(t, r.Contains(Pt(0, 0)))
	assert.False(t, r.Contains(Pt(1, 0)))
	assert.False(t, r.Contains(Pt(0, -3)))
}

func TestBoundOf(t *testing.T) {
	assert.Equal(t, Rect{}, BoundOf())
	assert.Equal(t, ByLTRB(-1, 0, 4, 7), BoundOf(Pt(4, 0), Pt(-1, 3), Pt(2, 7)))
}

func TestJSONFields(t *testing.T) {
	data, err := json.Marshal(ByLTWH(1, 2, 3, 4))
	require.NoError(t, err)
	assert.JSONEq(t, `{"p":{"l":1,"t":2},"s":{"w":3,"h":4}}`, string(data))
}
