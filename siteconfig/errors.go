package siteconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// ConfigError is returned by Resolve. It lists every violation found, in the
// order the checks run, so a config can be fixed in one pass.
type ConfigError struct {
	Errors []error
}

func (e *ConfigError) Error() string {
	if len(e.Errors) == 1 {
		return "invalid site config: " + e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "invalid site config: %d errors:", len(e.Errors))
	for _, err := range e.Errors {
		b.WriteString("\n\t* ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap makes the individual violations visible to errors.Is and errors.As.
func (e *ConfigError) Unwrap() []error {
	return e.Errors
}

// MissingFieldError is a required field that is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required field is missing", e.Field)
}

// TypeMismatchError is a field whose value has the wrong type or shape.
type TypeMismatchError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// DuplicateKeyError is a map holding keys that differ only in case, e.g.
// baseUrl and baseurl. Only one of them would be used.
type DuplicateKeyError struct {
	Field string
	Keys  []string
}

func (e *DuplicateKeyError) Error() string {
	quoted := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		quoted[i] = strconv.Quote(k)
	}
	return fmt.Sprintf("%s: keys %s differ only in case", e.Field, strings.Join(quoted, ", "))
}

// InvalidBaseURLError is a baseUrl that is not a slash-wrapped path.
type InvalidBaseURLError struct {
	Value string
}

func (e *InvalidBaseURLError) Error() string {
	return fmt.Sprintf("baseUrl: %q must start and end with \"/\"", e.Value)
}

// UnknownLocaleError is a defaultLocale not listed in locales.
type UnknownLocaleError struct {
	Locale string
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("defaultLocale: %q is not one of the configured locales", e.Locale)
}

// DuplicateLocaleError is a locale listed more than once.
type DuplicateLocaleError struct {
	Locale string
}

func (e *DuplicateLocaleError) Error() string {
	return fmt.Sprintf("locales: %q is listed more than once", e.Locale)
}

// NavItemShapeError is a nav item that does not set exactly one of targetId
// and href, matching its kind.
type NavItemShapeError struct {
	Index int
}

func (e *NavItemShapeError) Error() string {
	return fmt.Sprintf("navItems[%d]: exactly one of targetId (sidebarRef) or href (externalLink) must be set", e.Index)
}

// DuplicateNavItemError is a second nav item with the same label and position.
type DuplicateNavItemError struct {
	Label    string
	Position string
}

func (e *DuplicateNavItemError) Error() string {
	return fmt.Sprintf("navItems: duplicate item %q at position %q", e.Label, e.Position)
}

// DuplicateFooterGroupError is a second footer group with the same title.
type DuplicateFooterGroupError struct {
	Title string
}

func (e *DuplicateFooterGroupError) Error() string {
	return fmt.Sprintf("footerGroups: duplicate group %q", e.Title)
}

// UnknownHighlightStyleError is a prism theme with no matching highlighting style.
type UnknownHighlightStyleError struct {
	Field string
	Style string
}

func (e *UnknownHighlightStyleError) Error() string {
	return fmt.Sprintf("%s: unknown highlighting style %q", e.Field, e.Style)
}

// UnknownHighlightLanguageError is an additional prism language with no lexer.
type UnknownHighlightLanguageError struct {
	Language string
}

func (e *UnknownHighlightLanguageError) Error() string {
	return fmt.Sprintf("prism.additionalLanguages: unknown language %q", e.Language)
}
