// Package openapi derives the representations an endpoint can produce from
// an OpenAPI 3 document.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrOperationNotFound is returned when the document has no operation for
// the requested method and path.
var ErrOperationNotFound = errors.New("operation not found")

// LoadFile loads and validates an OpenAPI document from a file.
func LoadFile(path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load spec from file %s: %w", path, err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec %s: %w", path, err)
	}
	return doc, nil
}

// LoadData loads and validates an OpenAPI document from memory.
func LoadData(data []byte) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load spec: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec: %w", err)
	}
	return doc, nil
}

// Offers returns the media types of the success responses of an operation.
// path is the templated path as written in the document, e.g. "/users/{id}".
//
// Responses are visited in status order (200, 201, ..., 2XX) followed by
// "default"; the media types of each response are sorted. Duplicates are
// dropped, so the result is a candidate list in a stable fallback order.
func Offers(doc *openapi3.T, method, path string) ([]string, error) {
	op, err := operation(doc, method, path)
	if err != nil {
		return nil, err
	}
	if op.Responses == nil {
		return nil, nil
	}

	responses := op.Responses.Map()
	var offers []string
	seen := make(map[string]bool)
	for _, status := range successStatuses(responses) {
		ref := responses[status]
		if ref == nil || ref.Value == nil {
			continue
		}

		types := make([]string, 0, len(ref.Value.Content))
		for mediaType := range ref.Value.Content {
			types = append(types, mediaType)
		}
		sort.Strings(types)

		for _, mediaType := range types {
			if seen[mediaType] {
				continue
			}
			seen[mediaType] = true
			offers = append(offers, mediaType)
		}
	}
	return offers, nil
}

func operation(doc *openapi3.T, method, path string) (*openapi3.Operation, error) {
	if doc == nil || doc.Paths == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrOperationNotFound, method, path)
	}
	item := doc.Paths.Find(path)
	if item == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrOperationNotFound, method, path)
	}
	op := item.GetOperation(strings.ToUpper(method))
	if op == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrOperationNotFound, method, path)
	}
	return op, nil
}

// successStatuses returns the 2xx response keys in order, then "default".
func successStatuses(responses map[string]*openapi3.ResponseRef) []string {
	var statuses []string
	hasDefault := false
	for status := range responses {
		switch {
		case status == "default":
			hasDefault = true
		case len(status) == 3 && status[0] == '2':
			statuses = append(statuses, status)
		}
	}
	// "2XX" sorts after the numeric codes.
	sort.Strings(statuses)
	if hasDefault {
		statuses = append(statuses, "default")
	}
	return statuses
}

// Methods lists the HTTP methods the OpenAPI document defines for path, in
// the order http method constants are conventionally listed.
func Methods(doc *openapi3.T, path string) []string {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	item := doc.Paths.Find(path)
	if item == nil {
		return nil
	}

	var methods []string
	for _, m := range []string{
		http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodTrace,
	} {
		if item.GetOperation(m) != nil {
			methods = append(methods, m)
		}
	}
	return methods
}
