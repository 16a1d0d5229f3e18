// Package redact obfuscates sensitive field values in log lines of the
// form "key=value<sep>key=value<sep>".
package redact

import (
	"regexp"
	"strings"
)

// PIIFields are the form/query fields never written to logs in clear.
var PIIFields = []string{"email", "password", "new_password", "reset_token"}

// Redactor rewrites the values of its fields with a fixed replacement.
type Redactor struct {
	re          *regexp.Regexp
	replacement string
}

func New(fields []string, replacement, separator string) *Redactor {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = regexp.QuoteMeta(f)
	}
	sep := regexp.QuoteMeta(separator)
	re := regexp.MustCompile(`(` + strings.Join(quoted, "|") + `)=[^` + sep + `]*`)
	return &Redactor{re: re, replacement: replacement}
}

func (r *Redactor) Apply(message string) string {
	return r.re.ReplaceAllString(message, "${1}="+r.replacement)
}
