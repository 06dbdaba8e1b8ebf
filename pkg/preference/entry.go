package preference

import (
	"math"
	"strconv"
	"strings"
)

// Param is a media range parameter other than q.
type Param struct {
	Name  string
	Value string
}

// Entry is one ranked media range of a Preference.
type Entry struct {
	// Type is the lower-cased top-level type, "*" for any.
	Type string

	// Subtype is the lower-cased subtype, "*" for any.
	Subtype string

	// Params holds the non-q parameters in the order they were sent.
	Params []Param

	quality    float64
	hasQuality bool
	rank       float64
	index      int
}

// parseEntry builds an entry from a raw media token and its parameters.
// It reports false when the media part is not of the form type/subtype.
func parseEntry(raw rawEntry, index int) (Entry, bool) {
	typ, subtype, ok := strings.Cut(strings.TrimSpace(raw.media), "/")
	if !ok {
		return Entry{}, false
	}
	typ = strings.ToLower(strings.TrimSpace(typ))
	subtype = strings.ToLower(strings.TrimSpace(subtype))
	if typ == "" || subtype == "" {
		return Entry{}, false
	}

	e := Entry{Type: typ, Subtype: subtype, index: index}
	for _, p := range raw.params {
		name, value, _ := strings.Cut(p, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if name == "" {
			continue
		}

		if name == "q" {
			if q, ok := parseQuality(value); ok {
				e.quality = q
				e.hasQuality = true
			}
			continue
		}
		e.Params = append(e.Params, Param{Name: name, Value: value})
	}
	return e, true
}

// parseQuality parses a q value. Unparseable and non-finite values are
// rejected, finite ones are clamped to [0, 1].
func parseQuality(s string) (float64, bool) {
	q, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, false
	}
	return math.Min(math.Max(q, 0), 1), true
}

// Quality returns the explicit quality, or 1.0 if none was sent.
func (e Entry) Quality() float64 {
	if e.hasQuality {
		return e.quality
	}
	return 1.0
}

// ExplicitQuality returns the q parameter and whether the client sent one.
func (e Entry) ExplicitQuality() (float64, bool) {
	return e.quality, e.hasQuality
}

// Rank returns the effective rank used for ordering.
func (e Entry) Rank() float64 { return e.rank }

// Index returns the position of the entry in the input.
func (e Entry) Index() int { return e.index }

// MediaRange renders type/subtype followed by the non-q parameters.
func (e Entry) MediaRange() string {
	var b strings.Builder
	b.WriteString(e.Type)
	b.WriteByte('/')
	b.WriteString(e.Subtype)
	for _, p := range e.Params {
		b.WriteByte(';')
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}

// String renders the media range and its quality. A quality of 1.0 is the
// default and is omitted.
func (e Entry) String() string {
	q := e.Quality()
	if q == 1.0 {
		return e.MediaRange()
	}
	return e.MediaRange() + ";q=" + strconv.FormatFloat(q, 'f', -1, 64)
}

// Matches reports whether the entry accepts the given media type. Parameters
// of the media type are ignored.
func (e Entry) Matches(mediaType string) bool {
	typ, subtype, ok := splitMediaType(mediaType)
	if !ok {
		return false
	}
	return e.matches(typ, subtype)
}

func (e Entry) matches(typ, subtype string) bool {
	return (e.Type == "*" || e.Type == typ) && (e.Subtype == "*" || e.Subtype == subtype)
}

// equal compares the parsed content of two entries. Rank and index are
// derived and do not take part.
func (e Entry) equal(o Entry) bool {
	if e.Type != o.Type || e.Subtype != o.Subtype || e.hasQuality != o.hasQuality {
		return false
	}
	if e.hasQuality && e.quality != o.quality {
		return false
	}
	if len(e.Params) != len(o.Params) {
		return false
	}
	for i := range e.Params {
		if e.Params[i] != o.Params[i] {
			return false
		}
	}
	return true
}

// splitMediaType lower-cases a candidate media type and splits it into type
// and subtype, dropping any parameters.
func splitMediaType(mediaType string) (string, string, bool) {
	media, _, _ := strings.Cut(mediaType, ";")
	typ, subtype, ok := strings.Cut(strings.TrimSpace(media), "/")
	if !ok {
		return "", "", false
	}
	typ = strings.ToLower(strings.TrimSpace(typ))
	subtype = strings.ToLower(strings.TrimSpace(subtype))
	if typ == "" || subtype == "" {
		return "", "", false
	}
	return typ, subtype, true
}
