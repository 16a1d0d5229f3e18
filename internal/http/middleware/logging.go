package middleware

import (
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"vouch/internal/redact"
)

// RequestLogger logs one line per request. Submitted form fields are
// included with credential values masked.
func RequestLogger() func(http.Handler) http.Handler {
	red := redact.New(redact.PIIFields, "***", ";")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			_ = r.ParseForm()

			next.ServeHTTP(ww, r)

			line := r.Method + " " + r.URL.Path
			if form := flattenForm(r.Form); form != "" {
				line += " " + red.Apply(form)
			}
			log.Printf("%s -> %d (%s)\n", line, ww.Status(), time.Since(start))
		})
	}
}

func flattenForm(form map[string][]string) string {
	if len(form) == 0 {
		return ""
	}
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(strings.Join(form[k], ","))
		b.WriteString(";")
	}
	return b.String()
}
