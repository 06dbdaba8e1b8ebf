// Package config loads the negotiation settings of conneg.
//
// A configuration file is YAML (.yaml, .yml) or JSON (anything else). It is
// validated against an embedded JSON schema before it is decoded:
//
//	precision: 5
//	logging:
//	  level: info
//	  format: text
//	profiles:
//	  - name: api
//	    paths: ["/api/**"]
//	    offers: [application/json, application/xml, application/yaml]
//	  - name: site
//	    paths: ["/**"]
//	    offers: [text/html, text/plain]
//
// A profile names the representations a group of URL paths can produce, in
// the server's own fallback order. Paths are doublestar patterns; the first
// profile with a matching pattern wins.
package config
