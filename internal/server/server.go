package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/reorder"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// persistTimeout bounds a single snapshot save
const persistTimeout = 5 * time.Second

// SnapshotRepository persists snapshots by resume id. Both the file store
// and the Postgres store satisfy it.
type SnapshotRepository interface {
	Load(ctx context.Context, id uuid.UUID) (*types.Snapshot, error)
	Save(ctx context.Context, id uuid.UUID, snap types.Snapshot) error
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	store       *store.Store
	drag        *reorder.Controller
	repo        SnapshotRepository
	printer     export.PDFPrinter
	resumeID    uuid.UUID
	variant     string
	theme       types.ThemeConfig
	pdfTimeout  time.Duration
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port       int
	ResumeID   uuid.UUID
	Variant    string
	Theme      types.ThemeConfig
	PDFTimeout time.Duration
	RateLimit  *ratelimit.Config // nil reads RATE_LIMIT_* from the environment
}

// Deps are the collaborators the server works with. Only Store is
// required; without a Repository nothing is persisted and without a
// Printer PDF export answers 501.
type Deps struct {
	Store      *store.Store
	Repository SnapshotRepository
	Printer    export.PDFPrinter
}

// New creates a new server instance. When a repository is configured the
// stored snapshot for cfg.ResumeID is restored into the store and every
// later mutation is saved back.
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("server requires a store")
	}
	if cfg.PDFTimeout <= 0 {
		cfg.PDFTimeout = export.DefaultPDFTimeout
	}
	rateConfig := cfg.RateLimit
	if rateConfig == nil {
		rateConfig = ratelimit.LoadConfig()
	}

	s := &Server{
		store:       deps.Store,
		drag:        reorder.NewController(deps.Store, log.Default()),
		repo:        deps.Repository,
		printer:     deps.Printer,
		resumeID:    cfg.ResumeID,
		variant:     cfg.Variant,
		theme:       cfg.Theme,
		pdfTimeout:  cfg.PDFTimeout,
		rateLimiter: ratelimit.NewLimiter(rateConfig),
	}

	if s.repo != nil {
		if err := s.restore(context.Background()); err != nil {
			s.rateLimiter.Stop()
			return nil, err
		}
		s.store.Subscribe(s.persist)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("PUT /resume", s.handleRestoreResume)
	mux.HandleFunc("PUT /resume/personal-info", s.handleSetPersonalInfo)
	mux.HandleFunc("PUT /resume/skills", s.handleSetSkills)
	mux.HandleFunc("PUT /resume/experience", s.handleSetExperience)
	mux.HandleFunc("PUT /resume/education", s.handleSetEducation)
	mux.HandleFunc("PUT /resume/custom-sections", s.handleSetCustomSections)
	mux.HandleFunc("PUT /resume/section-order", s.handleSetSectionOrder)

	// Custom section lifecycle
	mux.HandleFunc("POST /resume/custom-sections", s.handleAddCustomSection)
	mux.HandleFunc("PATCH /resume/custom-sections/{id}", s.handleRenameCustomSection)
	mux.HandleFunc("PUT /resume/custom-sections/{id}/items", s.handleSetCustomSectionItems)
	mux.HandleFunc("DELETE /resume/custom-sections/{id}", s.handleRemoveCustomSection)

	// Drag session
	mux.HandleFunc("GET /resume/drag", s.handleDragStatus)
	mux.HandleFunc("POST /resume/drag/start", s.handleDragStart)
	mux.HandleFunc("POST /resume/drag/move", s.handleDragMove)
	mux.HandleFunc("POST /resume/drag/drop", s.handleDragDrop)
	mux.HandleFunc("POST /resume/drag/cancel", s.handleDragCancel)

	// Rendering and export
	mux.HandleFunc("GET /resume/variants", s.handleListVariants)
	mux.HandleFunc("GET /resume/render", s.handleRender)
	mux.HandleFunc("GET /resume/export.pdf", s.handleExportPDF)

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.PDFTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.Close()
	log.Println("Server stopped")
	return nil
}

// Close releases background resources. The caller owns the repository.
func (s *Server) Close() {
	s.drag.Cancel()
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}

// restore loads the stored snapshot for the configured resume id, if any
func (s *Server) restore(ctx context.Context) error {
	snap, err := s.repo.Load(ctx, s.resumeID)
	if err != nil {
		return fmt.Errorf("failed to load resume %s: %w", s.resumeID, err)
	}
	if snap == nil {
		log.Printf("[server] no stored resume %s, starting from defaults", s.resumeID)
		return nil
	}
	s.store.Restore(*snap)
	log.Printf("[server] restored resume %s (%d sections)", s.resumeID, len(snap.SectionOrder))
	return nil
}

// persist saves every post-mutation snapshot. Failures are logged and
// never roll back the in-memory state.
func (s *Server) persist(snap types.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.repo.Save(ctx, s.resumeID, snap); err != nil {
		log.Printf("[server] failed to persist resume %s: %v", s.resumeID, err)
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients that exhausted their bucket
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// failure maps err to its status code and writes it
func (s *Server) failure(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[server] internal error: %v", err)
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID uses the IP address from RemoteAddr
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"tier":      info.Tier,
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Tier=%s Limit=%d Reset=%s",
		info.Tier, info.Limit, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
