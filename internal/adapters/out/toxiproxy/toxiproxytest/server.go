// Package toxiproxytest provides an in-memory Toxiproxy API for tests.
package toxiproxytest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
)

// Proxy is the state the fake keeps for one proxy.
type Proxy struct {
	Name     string           `json:"name"`
	Listen   string           `json:"listen"`
	Upstream string           `json:"upstream"`
	Enabled  bool             `json:"enabled"`
	Toxics   map[string]Toxic `json:"-"`
}

// Toxic is the state the fake keeps for one toxic.
type Toxic struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Stream     string         `json:"stream"`
	Toxicity   float64        `json:"toxicity"`
	Attributes map[string]int `json:"attributes"`
}

// Server is a fake Toxiproxy API backed by httptest.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	proxies     map[string]*Proxy
	listAsArray bool
	failToxics  bool
	requests    []string
}

// NewServer starts a fake with the given proxies, all enabled.
func NewServer(names ...string) *Server {
	s := &Server{proxies: make(map[string]*Proxy)}
	for _, name := range names {
		s.proxies[name] = &Proxy{
			Name:     name,
			Listen:   "[::]:26257",
			Upstream: name + ":26257",
			Enabled:  true,
			Toxics:   make(map[string]Toxic),
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /proxies", s.list)
	mux.HandleFunc("POST /proxies/{name}", s.update)
	mux.HandleFunc("GET /proxies/{name}/toxics", s.listToxics)
	mux.HandleFunc("POST /proxies/{name}/toxics", s.createToxic)
	mux.HandleFunc("POST /proxies/{name}/toxics/{toxic}", s.updateToxic)
	mux.HandleFunc("DELETE /proxies/{name}/toxics/{toxic}", s.deleteToxic)

	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		s.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	return s
}

// ListAsArray makes GET /proxies answer with a flat array instead of a keyed object.
func (s *Server) ListAsArray(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listAsArray = v
}

// FailToxics makes every toxic creation fail with a server error.
func (s *Server) FailToxics(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failToxics = v
}

// SetEnabled changes a proxy's state directly.
func (s *Server) SetEnabled(name string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.proxies[name]; ok {
		p.Enabled = enabled
	}
}

// AddToxic installs a toxic directly.
func (s *Server) AddToxic(proxy string, t Toxic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.proxies[proxy]; ok {
		p.Toxics[t.Name] = t
	}
}

// Enabled reports a proxy's state.
func (s *Server) Enabled(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.proxies[name]
	return ok && p.Enabled
}

// Toxics returns a copy of a proxy's toxics keyed by name.
func (s *Server) Toxics(name string) map[string]Toxic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Toxic)
	if p, ok := s.proxies[name]; ok {
		for k, v := range p.Toxics {
			out[k] = v
		}
	}
	return out
}

// Requests returns the "METHOD path" lines received so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

type proxyView struct {
	*Proxy
	ToxicList []Toxic `json:"toxics"`
}

func (s *Server) view(p *Proxy) proxyView {
	toxics := make([]Toxic, 0, len(p.Toxics))
	for _, t := range p.Toxics {
		toxics = append(toxics, t)
	}
	sort.Slice(toxics, func(i, j int) bool { return toxics[i].Name < toxics[j].Name })
	return proxyView{Proxy: p, ToxicList: toxics}
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listAsArray {
		names := make([]string, 0, len(s.proxies))
		for name := range s.proxies {
			names = append(names, name)
		}
		sort.Strings(names)
		views := make([]proxyView, 0, len(names))
		for _, name := range names {
			views = append(views, s.view(s.proxies[name]))
		}
		writeJSON(w, http.StatusOK, views)
		return
	}

	views := make(map[string]proxyView, len(s.proxies))
	for name, p := range s.proxies {
		views[name] = s.view(p)
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proxies[r.PathValue("name")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "proxy not found"})
		return
	}

	var body struct {
		Enabled *bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if body.Enabled != nil {
		p.Enabled = *body.Enabled
	}
	writeJSON(w, http.StatusOK, s.view(p))
}

func (s *Server) listToxics(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proxies[r.PathValue("name")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "proxy not found"})
		return
	}
	writeJSON(w, http.StatusOK, s.view(p).ToxicList)
}

func (s *Server) createToxic(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failToxics {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "toxic backend failure"})
		return
	}

	p, ok := s.proxies[r.PathValue("name")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "proxy not found"})
		return
	}

	var t Toxic
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if _, exists := p.Toxics[t.Name]; exists {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "toxic already exists"})
		return
	}
	p.Toxics[t.Name] = t
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) updateToxic(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failToxics {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "toxic backend failure"})
		return
	}

	p, ok := s.proxies[r.PathValue("name")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "proxy not found"})
		return
	}
	name := r.PathValue("toxic")
	if _, exists := p.Toxics[name]; !exists {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "toxic not found"})
		return
	}

	var t Toxic
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	t.Name = name
	p.Toxics[name] = t
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) deleteToxic(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proxies[r.PathValue("name")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "proxy not found"})
		return
	}
	delete(p.Toxics, r.PathValue("toxic"))
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
