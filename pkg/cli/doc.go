// Package cli provides the command-line interface for conneg.
//
// The commands inspect how Accept headers are parsed and which media type a
// server would answer with:
//   - rank: Show the ranked media ranges of a header
//   - match: Pick the best of a list of offers
//   - quality: Show the quality a header assigns to media types
//   - profiles: List the offer profiles of a config file
//   - version: Show conneg version
//
// Offers for match come from the arguments, a named profile of the config
// file, or the responses of an OpenAPI operation.
//
// Usage:
//
//	conneg rank "text/*, text/html;level=1, */*;q=0.1"
//	conneg match --accept "application/*" text/html application/json
//	conneg match --accept "*/*" --profile api --config conneg.yaml
//	conneg match --accept "text/*" --openapi petstore.yaml --path /pets
//	conneg quality --accept "text/*" --precision 6 text/plain
//	conneg profiles --config conneg.yaml
package cli
