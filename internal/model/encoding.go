package model

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// DetailEntry is a single labeled entry in a portfolio item's detail list.
type DetailEntry map[string]string

// Details is the ordered detail list of a portfolio item. It is persisted as
// JSON text. Stored text that no longer decodes as a list of entries is kept
// available through Raw instead of failing the read.
type Details struct {
	Entries []DetailEntry
	Raw     string
}

// UnmarshalJSON accepts either a list of entries or a plain string. Any other
// JSON value is retained verbatim as Raw, matching what gets stored.
func (d *Details) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*d = Details{}
		return nil
	}
	var entries []DetailEntry
	if err := json.Unmarshal(b, &entries); err == nil {
		*d = Details{Entries: entries}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = Details{Raw: s}
		return nil
	}
	*d = Details{Raw: string(b)}
	return nil
}

// MarshalJSON emits the entry list, or the raw fallback string when the
// stored text was not decodable.
func (d Details) MarshalJSON() ([]byte, error) {
	if d.Raw != "" {
		return json.Marshal(d.Raw)
	}
	if d.Entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.Entries)
}

// StoredText returns the text persisted in the details column.
func (d Details) StoredText() string {
	if d.Raw != "" {
		return d.Raw
	}
	if d.Entries == nil {
		return "[]"
	}
	b, err := json.Marshal(d.Entries)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeDetails turns stored column text back into Details. Undecodable text
// is returned as the raw string, never an error.
func DecodeDetails(text string) Details {
	if text == "" {
		return Details{}
	}
	var entries []DetailEntry
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		return Details{Raw: text}
	}
	return Details{Entries: entries}
}

// Gallery is the ordered image list of a portfolio item, persisted as JSON
// text. Missing or undecodable stored text reads back as an empty gallery.
type Gallery []string

// MarshalJSON emits [] rather than null for an empty gallery.
func (g Gallery) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(g))
}

// StoredText returns the text persisted in the gallery column.
func (g Gallery) StoredText() string {
	if len(g) == 0 {
		return "[]"
	}
	b, err := json.Marshal([]string(g))
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeGallery turns stored column text back into a Gallery.
func DecodeGallery(text string) Gallery {
	if text == "" {
		return nil
	}
	var imgs []string
	if err := json.Unmarshal([]byte(text), &imgs); err != nil {
		return nil
	}
	return imgs
}
