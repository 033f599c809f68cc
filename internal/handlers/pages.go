package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/gw-translator/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"deref": func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	},
}).ParseFS(templateFS, "templates/*.html"))

type formPage struct {
	Message string
	Error   string
}

func renderPage(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logger.Log.Errorw("failed to render page", "page", name, "error", err)
	}
}

// NewLoginPageHandler serves the login form.
func NewLoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := formPage{}
		if r.URL.Query().Get("registered") == "1" {
			page.Message = "Registration successful! Please login."
		}
		renderPage(w, http.StatusOK, "login.html", page)
	}
}

// NewRegisterPageHandler serves the registration form.
func NewRegisterPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, "register.html", formPage{})
	}
}
