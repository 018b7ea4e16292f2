package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"appleradio-scraper/config"
	"appleradio-scraper/schedule"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Apple Music Radio Schedule</title></head>
<body>
<h1>Apple Music Radio Schedule</h1>
<p>Last scraped: {{.ScrapedAt}}</p>
<ul>
{{range .Files}}<li><a href="/files/{{.}}">{{.}}</a></li>
{{end}}</ul>
<h2>Coverage</h2>
<ul>
{{range .Reports}}<li>{{.Station}}: {{.ShowCount}} shows, {{printf "%.1f" .Percent}}% covered{{if not .Passed}} (INCOMPLETE){{end}}</li>
{{end}}</ul>
</body>
</html>
`))

type status struct {
	ScrapedAt string
	Files     []string
	Reports   []schedule.CoverageReport
}

// Server exposes the latest scrape results over HTTP: an index page, the
// export files, and a JSON status endpoint for monitoring.
type Server struct {
	mu  sync.Mutex
	cfg *config.Config
	st  status
}

func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// SetStatus replaces the published scrape state. Called after each run.
func (s *Server) SetStatus(scrapedAt time.Time, reports []schedule.CoverageReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = status{
		ScrapedAt: scrapedAt.UTC().Format(time.RFC3339),
		Files: []string{
			filepath.Base(s.cfg.JSONFile),
			filepath.Base(s.cfg.CSVFile),
			filepath.Base(s.cfg.ICSFile),
		},
		Reports: reports,
	}
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.mu.Lock()
	st := s.st
	s.mu.Unlock()
	if err := indexTemplate.Execute(w, st); err != nil {
		log.Printf("Error rendering index: %v", err)
	}
}

func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	st := s.st
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(st); err != nil {
		log.Printf("Error encoding status: %v", err)
	}
}

func (s *Server) fileHandler(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(r.URL.Path)
	switch name {
	case filepath.Base(s.cfg.JSONFile):
		http.ServeFile(w, r, s.cfg.JSONFile)
	case filepath.Base(s.cfg.CSVFile):
		http.ServeFile(w, r, s.cfg.CSVFile)
	case filepath.Base(s.cfg.ICSFile):
		http.ServeFile(w, r, s.cfg.ICSFile)
	default:
		http.NotFound(w, r)
	}
}

// Start runs the server in the foreground.
func (s *Server) Start(port string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.indexHandler)
	mux.HandleFunc("/status", s.statusHandler)
	mux.HandleFunc("/files/", s.fileHandler)

	addr := fmt.Sprintf("0.0.0.0:%s", port)
	log.Printf("Starting server on http://%s\n", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
