// Package minifiers minifies published files by media type.
package minifiers

import (
	"io"
	"regexp"

	"github.com/nemesisdb/siteconf/config"
	"github.com/tdewolff/minify/v2"
)

const (
	JSONType = "application/json"
	XMLType  = "application/xml"
)

// Client wraps a minifier.
type Client struct {
	m *minify.M

	// Whether published output should be minified.
	MinifyOutput bool
}

// New creates a new Client configured from the minify section of cfg, which
// may be nil.
func New(cfg config.Provider) (Client, error) {
	conf, err := decodeConfig(cfg)
	if err != nil {
		return Client{}, err
	}

	m := minify.New()

	m.Add(JSONType, getMinifier(conf, "json"))
	m.AddRegexp(regexp.MustCompile(`^(application|text)/(x-|(ld|manifest)\+)?json$`), getMinifier(conf, "json"))

	m.Add(XMLType, getMinifier(conf, "xml"))
	m.AddRegexp(regexp.MustCompile(`^(application|text)/(x-)?xml$`), getMinifier(conf, "xml"))

	return Client{m: m, MinifyOutput: conf.MinifyOutput}, nil
}

// getMinifier returns the appropriate minify.MinifierFunc for the MIME
// type suffix s, given the config c.
func getMinifier(c minifyConfig, s string) minify.Minifier {
	switch {
	case s == "json" && !c.DisableJSON:
		return &c.Tdewolff.JSON
	case s == "xml" && !c.DisableXML:
		return &c.Tdewolff.XML
	default:
		return noopMinifier{}
	}
}

// noopMinifier implements minify.Minifier [1], but doesn't minify content. This means
// that we can avoid missing minifiers for any MIME types in our minify.M, which
// causes minify to return errors, while still allowing minification to be
// disabled for specific types.
//
// [1]: https://pkg.go.dev/github.com/tdewolff/minify#Minifier
type noopMinifier struct{}

// Minify copies r into w without transformation.
func (m noopMinifier) Minify(_ *minify.M, w io.Writer, r io.Reader, _ map[string]string) error {
	_, err := io.Copy(w, r)
	return err
}

// Minify minifies r into w using the minifier registered for mediaType.
// Content of a media type without a minifier is copied as is.
func (m Client) Minify(mediaType string, w io.Writer, r io.Reader) error {
	_, params, min := m.m.Match(mediaType)
	if min == nil {
		_, err := io.Copy(w, r)
		return err
	}
	return min.Minify(m.m, w, r, params)
}
