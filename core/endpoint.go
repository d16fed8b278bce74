package core

import (
	"regexp"
	"strings"
)

// endpointPattern matches a normalized endpoint descriptor: an allowed verb,
// a colon, and a slash-prefixed path. Whitespace around the verb and path is
// trimmed before matching.
var endpointPattern = regexp.MustCompile(`^(GET|POST|PUT|DELETE|PATCH):(/[a-zA-Z0-9/_-]+)$`)

// allowedVerbs is the fixed set of HTTP methods an endpoint descriptor may
// name.
var allowedVerbs = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"DELETE": true,
	"PATCH":  true,
}

// Endpoint is a validated endpoint descriptor: an HTTP verb bound to an API
// path. The zero value is not valid; construct one with ParseEndpoint.
type Endpoint struct {
	verb string
	path string
}

// ParseEndpoint validates a descriptor of the form "<VERB>: /<path>" and
// returns the parsed endpoint. The verb is case-insensitive and normalized to
// uppercase. Malformed descriptors yield an *EndpointFormatError.
func ParseEndpoint(descriptor string) (Endpoint, error) {
	verb, err := VerbFromEndpoint(descriptor)
	if err != nil {
		return Endpoint{}, err
	}
	path, err := PathFromEndpoint(descriptor)
	if err != nil {
		return Endpoint{}, err
	}
	if !allowedVerbs[verb] {
		return Endpoint{}, &EndpointFormatError{
			Descriptor: descriptor,
			Reason:     "verb must be one of GET, POST, PUT, DELETE, PATCH",
		}
	}
	if !endpointPattern.MatchString(verb + ":" + path) {
		return Endpoint{}, &EndpointFormatError{
			Descriptor: descriptor,
			Reason:     "path must be non-empty, start with '/', and contain only [a-zA-Z0-9/_-]",
		}
	}
	return Endpoint{verb: verb, path: path}, nil
}

// Verb returns the uppercase HTTP method.
func (e Endpoint) Verb() string { return e.verb }

// Path returns the slash-prefixed API path.
func (e Endpoint) Path() string { return e.path }

// String reassembles the normalized descriptor.
func (e Endpoint) String() string { return e.verb + ": " + e.path }

// IsWrite reports whether the endpoint's verb carries a JSON body
// (POST/PUT/PATCH) rather than query parameters (GET/DELETE).
func (e Endpoint) IsWrite() bool {
	switch e.verb {
	case "POST", "PUT", "PATCH":
		return true
	}
	return false
}

// VerbFromEndpoint extracts the HTTP verb from a descriptor by splitting on
// the first colon, trimming whitespace, and uppercasing. Descriptors with no
// colon yield an *EndpointFormatError.
func VerbFromEndpoint(descriptor string) (string, error) {
	before, _, ok := strings.Cut(descriptor, ":")
	if !ok {
		return "", &EndpointFormatError{Descriptor: descriptor, Reason: "missing ':' separator"}
	}
	return strings.ToUpper(strings.TrimSpace(before)), nil
}

// PathFromEndpoint extracts the path from a descriptor: everything after the
// first colon, trimmed. Descriptors with no colon yield an
// *EndpointFormatError.
func PathFromEndpoint(descriptor string) (string, error) {
	_, after, ok := strings.Cut(descriptor, ":")
	if !ok {
		return "", &EndpointFormatError{Descriptor: descriptor, Reason: "missing ':' separator"}
	}
	return strings.TrimSpace(after), nil
}
