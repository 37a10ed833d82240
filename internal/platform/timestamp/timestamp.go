// Package timestamp decodifica fechas guardadas como texto sin fallar ante
// valores que no parsean.
package timestamp

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse acepta RFC3339 y las variantes sin zona (se asumen UTC).
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Time es un instante que tolera datos malformados: si el valor guardado no
// parsea queda en cero y se reescribe tal cual vino.
type Time struct {
	time.Time

	raw json.RawMessage
}

func From(t time.Time) Time { return Time{Time: t} }

// Valid indica si hay un instante utilizable.
func (t Time) Valid() bool { return !t.IsZero() }

// Equal compara el instante y, si no parseó, el valor crudo.
func (t Time) Equal(u Time) bool {
	return t.Time.Equal(u.Time) && bytes.Equal(t.raw, u.raw)
}

func (t *Time) UnmarshalJSON(data []byte) error {
	*t = Time{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, ok := Parse(s); ok {
			t.Time = parsed
			return nil
		}
	}
	t.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.raw != nil {
		return t.raw, nil
	}
	if t.IsZero() {
		return []byte("null"), nil
	}
	return t.Time.MarshalJSON()
}
