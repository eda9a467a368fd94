// Package urltemplate expands configured URL templates holding a single ${name}
// placeholder. The identifier is escaped for the part of the URL it lands in: path-segment
// escaping before the query delimiter, query escaping after it.
package urltemplate

import (
	"net/url"
	"strings"

	dErrors "purl/pkg/domain-errors"
)

// Placeholder returns the literal placeholder for name, e.g. "${unitID}".
func Placeholder(name string) string {
	return "${" + name + "}"
}

// Expand substitutes value for the ${placeholder} in template. A template without the
// placeholder is a configuration error naming both the placeholder and the template.
func Expand(template, placeholder, value string) (string, error) {
	ph := Placeholder(placeholder)
	at := strings.Index(template, ph)
	if at == -1 {
		return "", dErrors.Newf(dErrors.CodeConfiguration,
			"missing placeholder %q in URL template %q (check configuration)", ph, template)
	}

	var escaped string
	if q := strings.IndexByte(template, '?'); q == -1 || q > at {
		escaped = url.PathEscape(value)
	} else {
		escaped = url.QueryEscape(value)
	}

	expanded := strings.ReplaceAll(template, ph, escaped)
	if _, err := url.Parse(expanded); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeConfiguration,
			"URL template "+template+" does not expand to a valid URL")
	}
	return expanded, nil
}
