// Package preference ranks the media ranges of an Accept-style header and
// selects the best representation for a client.
//
// A Preference is built once from a header value and is immutable afterwards:
//
//	p := preference.Parse("text/html, application/xhtml+xml, */*;q=0.8")
//	selected, ok := p.Match([]string{"application/json", "text/html"})
//	// selected == "text/html", ok == true
//
// # Parsing
//
// Parsing is tolerant. Real user agents send malformed headers, so entries
// without a "type/subtype" media part are dropped instead of failing the
// whole header, and a semicolon-separated piece that looks like a media type
// starts a new entry:
//
//	*/*;q=0.1; application/*   ->   */*;q=0.1, application/*
//
// Types, subtypes and parameter names are lower-cased.
//
// # Ranking
//
// Every entry gets an effective rank:
//
//	rank = q + params·eps - wildcards·eps
//
// where q is the explicit quality (1.0 if absent), params the number of
// non-q parameters, wildcards 2 for "*/*", 1 for "type/*" and 0 otherwise, and
// eps = 10^-(precision-1). Explicit quality values dominate; among equal
// quality values more specific media ranges come first (RFC 2616 section
// 14.1). Entries of equal rank keep the order the client sent them in.
//
// # Matching
//
// Match walks the ranked entries and, for the first entry that matches any
// candidate, returns the earliest such candidate in the caller's order.
// QualityOf reports the quality the client assigns to a single media type.
package preference
