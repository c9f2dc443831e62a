package metadecoders

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/clbanning/mxj/v2"
	"github.com/nemesisdb/siteconf/common/maps"
	"github.com/nemesisdb/siteconf/common/text"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v2"
)

// Decoder provides some configuration options for the decoders.
type Decoder struct{}

// Default is a Decoder in its default configuration.
var Default = Decoder{}

// FileError is a decode failure that knows where in the source it happened.
type FileError struct {
	Format   Format
	Position text.Position
	Err      error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: failed to unmarshal %s: %s", e.Position, e.Format, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// UnmarshalToMap will unmarshall data in format f into a new map. This is
// what's needed for configuration files. All keys are lower cased and nested
// maps are converted to maps.Params.
func (d Decoder) UnmarshalToMap(data []byte, f Format) (maps.Params, error) {
	if data == nil {
		return maps.Params{}, nil
	}

	m := make(map[string]any)
	if err := d.unmarshal(data, f, &m); err != nil {
		return nil, err
	}

	// Keys are lower cased below, so these would silently shadow each other.
	if collisions := maps.FindKeyCollisions(m); len(collisions) > 0 {
		return nil, &FileError{Format: f, Position: text.Position{Offset: -1}, Err: keyCollisionError(collisions)}
	}

	p, ok := maps.ToParamsAndPrepare(m)
	if !ok {
		return nil, fmt.Errorf("failed to unmarshal %s: root is not a map", f)
	}

	return p, nil
}

// UnmarshalFileToMap is the same as UnmarshalToMap, but reads the data from
// the given filename. The format is derived from the file extension.
func (d Decoder) UnmarshalFileToMap(fs afero.Fs, filename string) (maps.Params, error) {
	format := FormatFromString(filename)
	if format == "" {
		return nil, fmt.Errorf("%q is not a valid configuration format", filename)
	}

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}

	m, err := d.UnmarshalToMap(data, format)
	if err != nil {
		var ferr *FileError
		if errors.As(err, &ferr) {
			ferr.Position.Filename = filename
		}
		return nil, err
	}
	return m, nil
}

func (d Decoder) unmarshal(data []byte, f Format, v *map[string]any) error {
	var err error

	switch f {
	case JSON:
		err = json.Unmarshal(data, v)
	case JSONC:
		err = json.Unmarshal(jsonc.ToJSON(data), v)
	case TOML:
		err = toml.Unmarshal(data, v)
	case YAML:
		err = yaml.Unmarshal(data, v)
	case XML:
		var xmlRoot mxj.Map
		xmlRoot, err = mxj.NewMapXml(data)
		if err == nil {
			var rootName string
			rootName, err = xmlRoot.Root()
			if err == nil {
				xmlValue, ok := xmlRoot[rootName].(map[string]any)
				if !ok {
					err = fmt.Errorf("root element %q has no children", rootName)
				} else {
					*v = xmlValue
				}
			}
		}
	default:
		return fmt.Errorf("unmarshal of format %q is not supported", f)
	}

	if err == nil {
		return nil
	}

	return toFileError(f, data, err)
}

func keyCollisionError(collisions []maps.KeyCollision) error {
	msgs := make([]string, len(collisions))
	for i, kc := range collisions {
		quoted := make([]string, len(kc.Keys))
		for j, k := range kc.Keys {
			quoted[j] = strconv.Quote(k)
		}
		msgs[i] = fmt.Sprintf("%s: keys %s differ only in case", kc.Path, strings.Join(quoted, ", "))
	}
	return errors.New(strings.Join(msgs, "; "))
}

var lineNumberRe = regexp.MustCompile(`line (\d+)`)

func toFileError(f Format, data []byte, err error) error {
	ferr := &FileError{Format: f, Err: err}

	var (
		tomlErr   *toml.DecodeError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &tomlErr):
		row, col := tomlErr.Position()
		ferr.Position = text.Position{Offset: -1, LineNumber: row, ColumnNumber: col}
	case errors.As(err, &syntaxErr):
		// JSONC input is stripped of comments without changing offsets.
		ferr.Position = text.PositionFromOffset(data, int(syntaxErr.Offset))
	case errors.As(err, &typeErr):
		ferr.Position = text.PositionFromOffset(data, int(typeErr.Offset))
	default:
		ferr.Position = text.Position{Offset: -1}
		if m := lineNumberRe.FindStringSubmatch(err.Error()); m != nil {
			ferr.Position.LineNumber, _ = strconv.Atoi(m[1])
		}
	}

	return ferr
}
