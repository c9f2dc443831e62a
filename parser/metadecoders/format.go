package metadecoders

import (
	"path/filepath"
	"strings"
)

// Format is a configuration file format.
type Format string

const (
	// These are the supported metdata formats.
	JSON  Format = "json"
	JSONC Format = "jsonc"
	TOML  Format = "toml"
	YAML  Format = "yaml"
	XML   Format = "xml"
)

// ValidFormats holds the file extensions, without the dot, that can be decoded.
var ValidFormats = []string{"toml", "yaml", "yml", "json", "jsonc", "xml"}

// FormatFromString turns formatStr, typically a file extension without any ".",
// into a Format. It returns an empty string for unknown formats.
func FormatFromString(formatStr string) Format {
	formatStr = strings.ToLower(formatStr)
	if strings.Contains(formatStr, ".") {
		// Assume a filename
		formatStr = strings.TrimPrefix(filepath.Ext(formatStr), ".")
	}
	switch formatStr {
	case "yaml", "yml":
		return YAML
	case "json":
		return JSON
	case "jsonc":
		return JSONC
	case "toml":
		return TOML
	case "xml":
		return XML
	}

	return ""
}
