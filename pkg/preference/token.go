package preference

import "strings"

// tokenKind tags a piece of a header value.
type tokenKind int

const (
	// tokenMedia starts a new entry.
	tokenMedia tokenKind = iota
	// tokenParam is a name=value parameter of the current entry.
	tokenParam
)

func (k tokenKind) String() string {
	switch k {
	case tokenMedia:
		return "media"
	case tokenParam:
		return "param"
	default:
		return "unknown"
	}
}

// token is a trimmed piece of a header value.
type token struct {
	kind  tokenKind
	value string
}

// rawEntry is a media token together with the parameter tokens that follow it.
type rawEntry struct {
	media  string
	params []string
}

// tokenize splits header segments into tagged tokens.
//
// Each segment is split on commas and then on semicolons. The first piece of
// a comma-separated part is always a media token. A later piece containing
// "=" is a parameter; one containing "/" without "=" is a media token, which
// recovers headers that use ";" between media ranges. Empty and unrecognized
// pieces are skipped.
func tokenize(segments []string) []token {
	var tokens []token
	for _, segment := range segments {
		for _, part := range strings.Split(segment, ",") {
			first := true
			for _, piece := range strings.Split(part, ";") {
				piece = strings.TrimSpace(piece)
				if piece == "" {
					continue
				}

				switch {
				case first:
					tokens = append(tokens, token{kind: tokenMedia, value: piece})
				case strings.Contains(piece, "="):
					tokens = append(tokens, token{kind: tokenParam, value: piece})
				case strings.Contains(piece, "/"):
					tokens = append(tokens, token{kind: tokenMedia, value: piece})
				}
				first = false
			}
		}
	}
	return tokens
}

// group folds a token sequence into raw entries. Parameter tokens that
// precede any media token have no owner and are dropped.
func group(tokens []token) []rawEntry {
	var entries []rawEntry
	for _, tok := range tokens {
		switch tok.kind {
		case tokenMedia:
			entries = append(entries, rawEntry{media: tok.value})
		case tokenParam:
			if len(entries) == 0 {
				continue
			}
			last := &entries[len(entries)-1]
			last.params = append(last.params, tok.value)
		}
	}
	return entries
}
