package profiles

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/nemesisdb/siteconf/common/maps"
	"github.com/nemesisdb/siteconf/helpers"
)

// Override is what a profile may change in the template. Everything else is
// shared by all profiles of a file.
type Override struct {
	BaseURL   string         `mapstructure:"baseurl" json:"baseUrl" validate:"omitempty,baseurl"`
	URL       string         `mapstructure:"url" json:"url" validate:"omitempty,url"`
	Title     string         `mapstructure:"title" json:"title"`
	Logo      map[string]any `mapstructure:"logo" json:"logo"`
	ColorMode any            `mapstructure:"colormode" json:"colorMode"`
	Prism     map[string]any `mapstructure:"prism" json:"prism"`

	keys []string
}

// Keys returns the names of the overridden keys, sorted.
func (o Override) Keys() []string {
	return append([]string(nil), o.keys...)
}

// overrideKeys maps the lower case key of every overridable field to its
// display name.
var overrideKeys = map[string]string{
	"baseurl":   "baseUrl",
	"url":       "url",
	"title":     "title",
	"logo":      "logo",
	"colormode": "colorMode",
	"prism":     "prism",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("json")
	})
	if err := v.RegisterValidation("baseurl", func(fl validator.FieldLevel) bool {
		return helpers.IsValidBaseURL(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func decodeOverride(p maps.Params) (Override, error) {
	var o Override

	var unknown []string
	for k := range p {
		name, ok := overrideKeys[k]
		if !ok {
			unknown = append(unknown, k)
			continue
		}
		o.keys = append(o.keys, name)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return o, fmt.Errorf("cannot override %s; allowed keys are %s", strings.Join(unknown, ", "), allowedKeys())
	}
	sort.Strings(o.keys)

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &o,
	})
	if err != nil {
		return o, err
	}
	if err := dec.Decode(map[string]any(p)); err != nil {
		return o, err
	}

	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return o, err
		}
		errs := make([]error, len(verrs))
		for i, fe := range verrs {
			errs[i] = fmt.Errorf("%s: %q is not a valid %s", fe.Field(), fe.Value(), describeTag(fe.Tag()))
		}
		return o, errors.Join(errs...)
	}

	return o, nil
}

func describeTag(tag string) string {
	switch tag {
	case "baseurl":
		return `base path (it must start and end with "/")`
	case "url":
		return "absolute URL"
	}
	return tag
}

func allowedKeys() string {
	names := make([]string, 0, len(overrideKeys))
	for _, name := range overrideKeys {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
