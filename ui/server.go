package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"gstinvoice/adapters/excel"
	"gstinvoice/adapters/pdf"
	"gstinvoice/domain/invoice"
	"gstinvoice/internal/config"
)

//go:embed templates/*.html
var embeddedFiles embed.FS

// Server is the invoice generator web server. It holds exactly one
// current invoice record: the upload handler is the only writer, the
// render and export handlers are readers, and a new upload replaces the
// prior record wholesale (last write wins).
type Server struct {
	router    *gin.Engine
	cfg       *config.Config
	reader    *excel.GridReader
	pdfWriter *pdf.Writer
	templates *template.Template

	mu             sync.RWMutex
	currentInvoice *invoice.Record
	isProcessing   bool
}

// NewServer creates a server with all routes and templates wired up.
func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	funcMap := template.FuncMap{
		"formatDate": invoice.NormalizeDate,
		"inr":        invoice.FormatINR,
		"words": func(v float64) string {
			return invoice.AmountInWords(int64(math.Floor(v)))
		},
		"add": func(a, b int) int { return a + b },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:    gin.Default(),
		cfg:       cfg,
		reader:    excel.NewGridReader(),
		pdfWriter: pdf.NewWriter(cfg.Seller),
		templates: templates,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	// Pages
	s.router.GET("/", s.handleIndex)
	s.router.GET("/invoices/current/print", s.handlePrintView)
	s.router.GET("/invoices/current/pdf", s.handlePDFDownload)

	// API endpoints
	s.router.POST("/api/invoices/upload", s.handleUpload)
	s.router.GET("/api/invoices/current", s.handleCurrentInvoice)
}

// Start runs the HTTP server until it fails.
func (s *Server) Start() error {
	addr := ":" + s.cfg.Server.Port
	log.Printf("Starting GST invoice generator on http://localhost%s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying handler for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// current returns the current invoice record, or nil when nothing has
// been uploaded yet.
func (s *Server) current() *invoice.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentInvoice
}

// replace installs a freshly built record as the current invoice.
func (s *Server) replace(rec *invoice.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentInvoice = rec
}

func (s *Server) setProcessing(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isProcessing = v
}

func (s *Server) processing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isProcessing
}

// renderTemplate writes an HTML template response through gin's writer.
func (s *Server) renderTemplate(c *gin.Context, name string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		log.Printf("[Server] Template error rendering %s: %v", name, err)
		c.String(500, "Template error")
	}
}

// stamp assigns identity and upload time to a freshly normalized record.
func stamp(rec *invoice.Record) {
	rec.ID = invoice.NewRecordID()
	rec.UploadedAt = time.Now().UTC()
}
