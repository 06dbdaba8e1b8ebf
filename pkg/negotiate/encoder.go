package negotiate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"unicode"

	"github.com/beevik/etree"
	"github.com/getmockd/conneg/pkg/httputil"
	"gopkg.in/yaml.v3"
)

// ErrNoEncoder is returned by Render when no encoder is registered for the
// negotiated media type.
var ErrNoEncoder = errors.New("no encoder for media type")

// Encoder writes a value in one representation.
type Encoder interface {
	Encode(w io.Writer, v any) error
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(w io.Writer, v any) error

// Encode calls f(w, v).
func (f EncoderFunc) Encode(w io.Writer, v any) error { return f(w, v) }

// Encoders maps media types ("type/subtype", lower case) to encoders.
type Encoders map[string]Encoder

// DefaultEncoders returns a fresh registry with JSON, XML, YAML and plain
// text encoders.
func DefaultEncoders() Encoders {
	return Encoders{
		"application/json":   EncoderFunc(encodeJSON),
		"application/xml":    EncoderFunc(encodeXML),
		"text/xml":           EncoderFunc(encodeXML),
		"application/yaml":   EncoderFunc(encodeYAML),
		"application/x-yaml": EncoderFunc(encodeYAML),
		"text/yaml":          EncoderFunc(encodeYAML),
		"text/plain":         EncoderFunc(encodeText),
	}
}

// Register adds or replaces the encoder for mediaType.
func (e Encoders) Register(mediaType string, enc Encoder) {
	e[mediaKey(mediaType)] = enc
}

// Lookup returns the encoder for mediaType, ignoring parameters and case.
func (e Encoders) Lookup(mediaType string) (Encoder, bool) {
	enc, ok := e[mediaKey(mediaType)]
	return enc, ok
}

// MediaTypes returns the registered media types in sorted order.
func (e Encoders) MediaTypes() []string {
	types := make([]string, 0, len(e))
	for t := range e {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func mediaKey(mediaType string) string {
	media, _, _ := strings.Cut(mediaType, ";")
	return strings.ToLower(strings.TrimSpace(media))
}

// Render writes v with the given status in the media type negotiated for r.
// Requests that did not pass through Middleware are negotiated on the spot.
func (n *Negotiator) Render(w http.ResponseWriter, r *http.Request, status int, v any) error {
	selected := FromContext(r.Context())
	if selected == "" {
		httputil.AddVary(w.Header(), HeaderAccept)
		var err error
		selected, err = n.Negotiate(r)
		if err != nil {
			httputil.WriteNotAcceptable(w, n.offers)
			return err
		}
	}
	return write(w, n.encoders, selected, status, v)
}

// Render writes v in the media type stored on the request context by
// Middleware or ProfileMiddleware, using DefaultEncoders.
func Render(w http.ResponseWriter, r *http.Request, status int, v any) error {
	selected := FromContext(r.Context())
	if selected == "" {
		selected = "application/json"
	}
	return write(w, DefaultEncoders(), selected, status, v)
}

func write(w http.ResponseWriter, encoders Encoders, mediaType string, status int, v any) error {
	enc, ok := encoders.Lookup(mediaType)
	if !ok {
		httputil.WriteInternalError(w, "no_encoder", "No encoder for "+mediaType)
		return fmt.Errorf("%w: %s", ErrNoEncoder, mediaType)
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf, v); err != nil {
		httputil.WriteInternalError(w, "encode_failed", "Failed to encode response")
		return fmt.Errorf("encode %s: %w", mediaType, err)
	}

	w.Header().Set(HeaderContentType, mediaType)
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

func encodeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func encodeText(w io.Writer, v any) error {
	var err error
	switch t := v.(type) {
	case string:
		_, err = io.WriteString(w, t)
	case []byte:
		_, err = w.Write(t)
	case fmt.Stringer:
		_, err = io.WriteString(w, t.String())
	default:
		_, err = fmt.Fprintf(w, "%v", v)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// encodeXML renders v under a <response> root. Values are first mapped
// through JSON so struct tags apply the same way as in the JSON encoder;
// objects become child elements in key order and arrays repeat <item>.
func encodeXML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	appendXML(doc.CreateElement("response"), generic)
	doc.Indent(2)
	_, err = doc.WriteTo(w)
	return err
}

func appendXML(el *etree.Element, v any) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			appendXML(el.CreateElement(xmlName(k)), t[k])
		}
	case []any:
		for _, item := range t {
			appendXML(el.CreateElement("item"), item)
		}
	case nil:
	default:
		el.SetText(fmt.Sprint(t))
	}
}

// xmlName turns an arbitrary key into a valid element name.
func xmlName(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case unicode.IsLetter(r) || r == '_':
			b.WriteRune(r)
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
