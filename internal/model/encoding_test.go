package model

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsRoundTrip(t *testing.T) {
	var d Details
	require.NoError(t, json.Unmarshal([]byte(`[{"k":"v"},{"label":"기간","value":"2023"}]`), &d))
	require.Len(t, d.Entries, 2)
	assert.Equal(t, DetailEntry{"k": "v"}, d.Entries[0])

	stored := d.StoredText()
	decoded := DecodeDetails(stored)
	assert.Equal(t, d.Entries, decoded.Entries)
	assert.Empty(t, decoded.Raw)
}

func TestDetailsStringPayload(t *testing.T) {
	var d Details
	require.NoError(t, json.Unmarshal([]byte(`"[{\"k\":\"v\"}]"`), &d))
	assert.Equal(t, `[{"k":"v"}]`, d.Raw)

	// The stored text is the string's content, so the next read decodes it.
	decoded := DecodeDetails(d.StoredText())
	assert.Equal(t, []DetailEntry{{"k": "v"}}, decoded.Entries)
}

func TestDecodeDetailsMalformedFallsBackToRaw(t *testing.T) {
	d := DecodeDetails("not json at all {{{")
	assert.Empty(t, d.Entries)
	assert.Equal(t, "not json at all {{{", d.Raw)

	// The raw fallback is surfaced as a plain string, never an error.
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"not json at all {{{"`, string(b))
}

func TestDetailsMarshalEmpty(t *testing.T) {
	b, err := json.Marshal(Details{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestGalleryDecode(t *testing.T) {
	assert.Equal(t, Gallery{"/g1.png", "/g2.png"}, DecodeGallery(`["/g1.png","/g2.png"]`))
	assert.Nil(t, DecodeGallery(""))
	assert.Nil(t, DecodeGallery("broken ["))
}

func TestGalleryMarshalEmptyAsArray(t *testing.T) {
	b, err := json.Marshal(Gallery(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestGalleryStoredTextRoundTrip(t *testing.T) {
	g := Gallery{"/a.jpg"}
	assert.Equal(t, g, DecodeGallery(g.StoredText()))
	assert.Equal(t, "[]", Gallery(nil).StoredText())
}
