package helpers

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// baseURLRe matches a slash-wrapped path made of word characters and dashes,
// e.g. "/", "/docs/" or "/docs-deploy/v2/".
var baseURLRe = regexp.MustCompile(`^/([\w-]+/)*$`)

// routePathRe matches a route base path with its outer slashes trimmed,
// e.g. "docs" or "docs/v2.1".
var routePathRe = regexp.MustCompile(`^[\w.-]+(/[\w.-]+)*$`)

// IsValidBaseURL reports whether s is a usable site base path.
func IsValidBaseURL(s string) bool {
	return baseURLRe.MatchString(s)
}

// NormalizeRoutePath trims the outer slashes of a docs route base path and
// returns it with a single leading slash, e.g. "docs/" gives "/docs" and
// "/" gives "/". It reports false for a path with empty or invalid
// segments.
func NormalizeRoutePath(s string) (string, bool) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return "/", true
	}
	if !routePathRe.MatchString(s) {
		return "", false
	}
	return "/" + s, true
}

// IsAbsURL reports whether s is an absolute URL with a scheme and a host,
// e.g. "https://stackoverflow.com/questions/tagged/nemesisdb".
func IsAbsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}

// IsHTTPURL is IsAbsURL restricted to the http and https schemes.
func IsHTTPURL(s string) bool {
	if !IsAbsURL(s) {
		return false
	}
	u, _ := url.Parse(s)
	return u.Scheme == "http" || u.Scheme == "https"
}

// PrependBasePath prepends the base path to the given site relative path,
// keeping any trailing slash of rel.
func PrependBasePath(basePath, rel string) string {
	if basePath == "" || basePath == "/" {
		if !strings.HasPrefix(rel, "/") {
			rel = "/" + rel
		}
		return rel
	}
	hadSlash := strings.HasSuffix(rel, "/")
	rel = path.Join(basePath, rel)
	if hadSlash && !strings.HasSuffix(rel, "/") {
		rel += "/"
	}
	return rel
}

// SiteURL joins the production URL of a site with its base path,
// e.g. "https://nemesisdb.github.io" and "/docs-deploy/" gives
// "https://nemesisdb.github.io/docs-deploy/". An empty siteURL gives
// the base path alone.
func SiteURL(siteURL, basePath string) string {
	if siteURL == "" {
		return basePath
	}
	return strings.TrimSuffix(siteURL, "/") + PrependBasePath(basePath, "/")
}
