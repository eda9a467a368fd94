package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purl/internal/purl/mediatype"
)

func TestAccessPointMediaType(t *testing.T) {
	t.Run("missing format falls back to jpeg", func(t *testing.T) {
		mt, err := AccessPoint{URI: "https://medialib.example/1"}.MediaType()
		require.NoError(t, err)
		assert.Equal(t, mediatype.JPEG, mt)
	})

	t.Run("recorded format is parsed", func(t *testing.T) {
		mt, err := AccessPoint{URI: "https://medialib.example/1", Format: "audio/mp3"}.MediaType()
		require.NoError(t, err)
		assert.Equal(t, "audio/mp3", mt.String())
	})

	t.Run("garbage format is an error", func(t *testing.T) {
		_, err := AccessPoint{URI: "https://medialib.example/1", Format: "mp3"}.MediaType()
		assert.ErrorIs(t, err, mediatype.ErrInvalid)
	})
}

func TestFirstAccessURI(t *testing.T) {
	var nilRecord *Record
	_, ok := nilRecord.FirstAccessURI()
	assert.False(t, ok)

	_, ok = (&Record{}).FirstAccessURI()
	assert.False(t, ok)

	uri, ok := (&Record{AccessPoints: []AccessPoint{
		{URI: "https://medialib.example/a"},
		{URI: "https://medialib.example/b"},
	}}).FirstAccessURI()
	assert.True(t, ok)
	assert.Equal(t, "https://medialib.example/a", uri)
}
