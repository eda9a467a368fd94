package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"purl/internal/purl/family"
	"purl/pkg/platform/httputil"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Application string `json:"application"`
	Version     string `json:"version"`
	GitCommit   string `json:"git_commit,omitempty"`
	BuildDate   string `json:"build_date,omitempty"`
	GoVersion   string `json:"go_version,omitempty"`
}

// SystemHandler serves the welcome page, version information and the liveness probe.
type SystemHandler struct {
	info BuildInfo
}

// NewSystem constructs a SystemHandler.
func NewSystem(info BuildInfo) *SystemHandler {
	return &SystemHandler{info: info}
}

// Register mounts the system endpoints on the router.
func (h *SystemHandler) Register(r chi.Router) {
	r.Get("/", h.HandleWelcome)
	r.Get("/version", h.HandleVersion)
	r.Get("/version/json", h.HandleVersionJSON)
	r.Get("/health", h.HandleHealth)
}

var welcomePage = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Application}}</title></head>
<body>
<h1>Naturalis PURL service</h1>
<p>Persistent URLs for specimens and observations. Supported PURL patterns:</p>
<ul>
{{range .Patterns}}<li><code>{{.}}</code></li>
{{end}}</ul>
<p>Use the Accept header to choose a representation. Add <code>__debug</code> to a PURL to see
where it resolves to, and <code>__accept</code> to override the Accept header.</p>
<p>Version {{.Version}}</p>
</body>
</html>
`))

// HandleWelcome handles GET /.
func (h *SystemHandler) HandleWelcome(w http.ResponseWriter, r *http.Request) {
	patterns := make([]string, 0, len(family.All))
	for _, f := range family.All {
		patterns = append(patterns, f.Pattern())
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = welcomePage.Execute(w, struct {
		Application string
		Version     string
		Patterns    []string
	}{h.info.Application, h.info.Version, patterns})
}

// HandleVersion handles GET /version.
func (h *SystemHandler) HandleVersion(w http.ResponseWriter, r *http.Request) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\nVersion: %s\n", h.info.Application, h.info.Version)
	if h.info.BuildDate != "" {
		fmt.Fprintf(&sb, "Build date: %s\n", h.info.BuildDate)
	}
	if h.info.GitCommit != "" {
		fmt.Fprintf(&sb, "Git commit: %s\n", h.info.GitCommit)
	}
	if h.info.GoVersion != "" {
		fmt.Fprintf(&sb, "Go version: %s\n", h.info.GoVersion)
	}
	httputil.WriteText(w, http.StatusOK, sb.String())
}

// HandleVersionJSON handles GET /version/json.
func (h *SystemHandler) HandleVersionJSON(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.info)
}

// HandleHealth handles GET /health.
func (h *SystemHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
