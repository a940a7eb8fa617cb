package templates

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed *.html
var files embed.FS

// Parse loads every embedded view. Pages are addressed by file name
// ("categories.html"); layout.html contributes the shared head/foot.
func Parse() (*template.Template, error) {
	funcs := template.FuncMap{
		"fmtDate": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
		"fmtDateTime": func(t time.Time) string {
			return t.Format("02 Jan 2006, 03:04 PM")
		},
		"inr": func(v float64) string {
			if v == float64(int64(v)) {
				return fmt.Sprintf("₹%d", int64(v))
			}
			return fmt.Sprintf("₹%.2f", v)
		},
		"lineTotal": func(quantity int, price float64) float64 {
			return float64(quantity) * price
		},
	}
	return template.New("").Funcs(funcs).ParseFS(files, "*.html")
}
