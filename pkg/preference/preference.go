package preference

import (
	"math"
	"sort"
	"strings"
)

// Preference is the ranked list of media ranges a client accepts.
// It is immutable once constructed and safe for concurrent use.
type Preference struct {
	entries   []Entry
	precision int
}

// Option configures a Preference.
type Option func(*Preference)

// WithPrecision sets the precision used to derive the ordering epsilon.
// Values below MinPrecision select DefaultPrecision.
func WithPrecision(precision int) Option {
	return func(p *Preference) {
		p.precision = normalizePrecision(precision)
	}
}

// Parse builds a Preference from a header value such as
// "text/html, application/xml;q=0.9, */*;q=0.8". A single media type is a
// valid header value.
func Parse(header string, opts ...Option) *Preference {
	return build([]string{header}, opts)
}

// FromList builds a Preference from media ranges that were already split,
// e.g. []string{"text/xml", "text/plain;q=0.9"}. Each element is parsed with
// the same tolerance as a header value.
func FromList(types []string, opts ...Option) *Preference {
	return build(types, opts)
}

func build(segments []string, opts []Option) *Preference {
	p := &Preference{precision: DefaultPrecision}
	for _, o := range opts {
		o(p)
	}

	for _, raw := range group(tokenize(segments)) {
		e, ok := parseEntry(raw, len(p.entries))
		if !ok {
			continue
		}
		p.entries = append(p.entries, e)
	}
	p.entries = ranked(p.entries, p.precision)
	return p
}

// ranked returns a copy of entries with ranks computed at precision, ordered
// by rank descending and input position ascending.
func ranked(entries []Entry, precision int) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	for i := range out {
		out[i].rank = rank(&out[i], precision)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].rank != out[j].rank {
			return out[i].rank > out[j].rank
		}
		return out[i].index < out[j].index
	})
	return out
}

// Len returns the number of parsed entries.
func (p *Preference) Len() int { return len(p.entries) }

// Precision returns the precision the entries were ranked with.
func (p *Preference) Precision() int { return p.precision }

// Entries returns a copy of the ranked entries.
func (p *Preference) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	for i, e := range p.entries {
		e.Params = append([]Param(nil), e.Params...)
		out[i] = e
	}
	return out
}

// All returns the ranked media ranges without their q values.
func (p *Preference) All() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.MediaRange()
	}
	return out
}

// Match returns the best of the given candidates. Entries are tried in rank
// order; for the first entry that matches anything, the earliest matching
// candidate is returned as given. It reports false when no entry matches
// any candidate.
func (p *Preference) Match(candidates []string) (string, bool) {
	type parsed struct {
		typ, subtype string
		ok           bool
	}
	split := make([]parsed, len(candidates))
	for i, c := range candidates {
		typ, subtype, ok := splitMediaType(c)
		split[i] = parsed{typ: typ, subtype: subtype, ok: ok}
	}

	for _, e := range p.entries {
		for i, c := range split {
			if c.ok && e.matches(c.typ, c.subtype) {
				return candidates[i], true
			}
		}
	}
	return "", false
}

// QualityOf returns the quality the client assigns to mediaType at the
// precision of p. See QualityWithPrecision.
func (p *Preference) QualityOf(mediaType string) float64 {
	return p.QualityWithPrecision(mediaType, p.precision)
}

// QualityWithPrecision returns the quality of the first ranked entry that
// matches mediaType, or 0 if none does. Wildcard entries are reduced by their
// penalty epsilon, so "text/*" yields 0.99999 for "text/plain" at precision
// 6. The result is rounded to precision decimal digits.
func (p *Preference) QualityWithPrecision(mediaType string, precision int) float64 {
	typ, subtype, ok := splitMediaType(mediaType)
	if !ok {
		return 0
	}

	precision = normalizePrecision(precision)
	entries := p.entries
	if precision != p.precision {
		entries = ranked(p.entries, precision)
	}

	for _, e := range entries {
		if !e.matches(typ, subtype) {
			continue
		}
		penalty := float64(wildcardPenalty(e.Type, e.Subtype))
		q := e.Quality() - penalty*epsilon(precision)
		return roundTo(math.Max(q, 0), precision)
	}
	return 0
}

// String renders the ranked entries, e.g.
// "Preference<text/xml, text/html;q=0.8>".
func (p *Preference) String() string {
	parts := make([]string, len(p.entries))
	for i, e := range p.entries {
		parts[i] = e.String()
	}
	return "Preference<" + strings.Join(parts, ", ") + ">"
}

// Equal reports whether p and other hold the same entries in the same
// order. Precision is not compared.
func (p *Preference) Equal(other *Preference) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.entries) != len(other.entries) {
		return false
	}
	for i := range p.entries {
		if !p.entries[i].equal(other.entries[i]) {
			return false
		}
	}
	return true
}
