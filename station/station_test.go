package station

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New(map[string]any{"id": "X1", "lat": 45.0})

	id, ok := s.Get("id")
	require.True(t, ok)
	assert.Equal(t, "X1", id)

	lat, ok := s.Get("lat")
	require.True(t, ok)
	assert.Equal(t, 45.0, lat)

	_, ok = s.Get("lon")
	assert.False(t, ok)
}

func TestNewCopiesAttributes(t *testing.T) {
	attrs := map[string]any{"id": "X1"}
	s := New(attrs)
	attrs["id"] = "changed"

	id, _ := s.Get("id")
	assert.Equal(t, "X1", id)

	fields := s.Fields()
	fields["id"] = "changed again"
	id, _ = s.Get("id")
	assert.Equal(t, "X1", id)
}

func TestNewNil(t *testing.T) {
	s := New(nil)
	assert.Empty(t, s.Keys())
	assert.Equal(t, "Station(map[])", s.String())
}

func TestKeys(t *testing.T) {
	s := New(map[string]any{"name": "Oxford", "id": "X1", "lat": 51.7})
	assert.Equal(t, []string{"id", "lat", "name"}, s.Keys())
}

func TestString(t *testing.T) {
	s := New(map[string]any{"id": "X1", "lat": 45.0})
	str := s.String()

	assert.Contains(t, str, "id:X1")
	assert.Contains(t, str, "lat:45")
	assert.Equal(t, "Station(map[id:X1 lat:45])", str)
}

func TestDecode(t *testing.T) {
	type ghcnStation struct {
		ID        string  `station:"id"`
		Name      string  `station:"name"`
		Latitude  float64 `station:"lat"`
		Longitude float64 `station:"lon"`
		Elevation int     `station:"elevation"`
	}

	tests := []struct {
		name     string
		attrs    map[string]any
		expected ghcnStation
	}{
		{
			name:     "typed values",
			attrs:    map[string]any{"id": "X1", "name": "Oxford", "lat": 51.7, "lon": -1.3, "elevation": 63},
			expected: ghcnStation{ID: "X1", Name: "Oxford", Latitude: 51.7, Longitude: -1.3, Elevation: 63},
		},
		{
			name:     "string values",
			attrs:    map[string]any{"id": "X2", "lat": "12.5", "lon": "-3.25", "elevation": "120"},
			expected: ghcnStation{ID: "X2", Latitude: 12.5, Longitude: -3.25, Elevation: 120},
		},
		{
			name:     "extra fields ignored",
			attrs:    map[string]any{"id": "X3", "brightness": 17},
			expected: ghcnStation{ID: "X3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ghcnStation
			require.NoError(t, New(tt.attrs).Decode(&got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	type target struct {
		Latitude float64 `station:"lat"`
	}

	var got target
	err := New(map[string]any{"lat": "north"}).Decode(&got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode station fields")

	err = New(map[string]any{"lat": 1.0}).Decode(got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create station decoder")
}
