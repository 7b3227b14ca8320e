package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/imathiatour/poi-server/catalog"
	"github.com/imathiatour/poi-server/internal/config"
	"github.com/imathiatour/poi-server/poi"
	"github.com/imathiatour/poi-server/token"
	"github.com/imathiatour/poi-server/users"
	"github.com/imathiatour/poi-server/wikidata"
)

type Server struct {
	env    string // Environment (e.g., "DEV", "production")
	mux    *http.ServeMux
	routes []string
	config config.Config
	tokens *token.Service
	users  users.Repo
	pois   *poi.Service

	fetcherOverride poi.Fetcher
}

// Option defines a function type to modify the Server instance.
type Option func(*Server)

// WithFetcher replaces the Wikidata-backed entity fetcher (primarily for
// testing against a fake upstream).
func WithFetcher(fetcher poi.Fetcher) Option {
	return func(s *Server) {
		s.fetcherOverride = fetcher
	}
}

// WithUserRepo replaces the demo credential store.
func WithUserRepo(repo users.Repo) Option {
	return func(s *Server) {
		s.users = repo
	}
}

func New(cfg config.Config, options ...Option) (*Server, error) {
	s := &Server{
		mux:    http.NewServeMux(),
		config: cfg,
		env:    cfg.GetEnv(),
		tokens: token.NewService(cfg),
		users:  users.NewInMemoryRepo(),
	}

	for _, opt := range options {
		opt(s)
	}

	idx, err := loadCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to load catalog: %w", err)
	}

	fetcher := s.fetcherOverride
	if fetcher == nil {
		fetcher = wikidata.NewClient(cfg)
	}
	s.pois = poi.NewService(idx, fetcher)

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func loadCatalog(cfg config.EnvConfig) (*catalog.Index, error) {
	if path := cfg.GetSeedPath(); path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.LoadDefault()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
