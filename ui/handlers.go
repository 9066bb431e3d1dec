package ui

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gstinvoice/internal/errors"
	"gstinvoice/internal/normalize"
)

// pageData feeds the index and print templates.
type pageData struct {
	Seller       sellerView
	Invoice      interface{}
	HasInvoice   bool
	IsProcessing bool
}

type sellerView struct {
	Name    string
	GSTIN   string
	State   string
	Country string
	Phone   string
	Email   string
	Notes   string
}

func (s *Server) sellerView() sellerView {
	return sellerView(s.cfg.Seller)
}

// handleIndex renders the upload page with the current invoice preview.
func (s *Server) handleIndex(c *gin.Context) {
	data := pageData{
		Seller:       s.sellerView(),
		IsProcessing: s.processing(),
	}
	if rec := s.current(); rec != nil {
		data.Invoice = rec
		data.HasInvoice = true
	}
	s.renderTemplate(c, "index.html", data)
}

// handleUpload ingests a spreadsheet and replaces the current invoice.
// A decode failure is reported as a blocking error and leaves the prior
// record in place; malformed content inside a decodable sheet never
// fails, it just defaults.
func (s *Server) handleUpload(c *gin.Context) {
	log.Printf("[handleUpload] Starting spreadsheet upload")

	file, header, err := c.Request.FormFile("spreadsheet")
	if err != nil {
		log.Printf("[handleUpload] FAILED - No file uploaded: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if header.Size > s.cfg.Upload.MaxBytes {
		log.Printf("[handleUpload] FAILED - File too large: %d bytes", header.Size)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File size (%.1f MB) exceeds the %d MB limit",
				float64(header.Size)/(1024*1024), s.cfg.Upload.MaxBytes/(1024*1024)),
		})
		return
	}

	filename := header.Filename
	if !hasSpreadsheetExtension(filename) {
		log.Printf("[handleUpload] FAILED - Invalid file extension: %s", filename)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only Excel (.xlsx, .xls) and CSV (.csv) files are allowed"})
		return
	}

	s.setProcessing(true)
	defer s.setProcessing(false)

	grid, err := s.reader.ReadGrid(file, filename)
	if err != nil {
		// The prior record, if any, stays on display.
		log.Printf("[handleUpload] FAILED - %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Error processing spreadsheet. Please check the format.",
			"code":  errors.GetCode(err),
		})
		return
	}

	rec := normalize.BuildRecord(grid)
	stamp(&rec)
	s.replace(&rec)

	log.Printf("[handleUpload] Invoice %s replaced current record (%d items)",
		rec.Header.Number, len(rec.Items))
	c.JSON(http.StatusOK, gin.H{
		"id":            rec.ID,
		"invoiceNumber": rec.Header.Number,
		"itemCount":     len(rec.Items),
		"totalAmount":   rec.Totals.TotalAmount,
		"exportable":    rec.HasItems(),
	})
}

// handleCurrentInvoice returns the current record as JSON.
func (s *Server) handleCurrentInvoice(c *gin.Context) {
	rec := s.current()
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No invoice uploaded yet"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// handlePrintView renders the bare invoice template for the browser's
// print dialog.
func (s *Server) handlePrintView(c *gin.Context) {
	rec := s.current()
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No invoice uploaded yet"})
		return
	}
	if !rec.HasItems() {
		c.JSON(http.StatusConflict, gin.H{"error": "There is nothing to print. Please check your spreadsheet."})
		return
	}
	s.renderTemplate(c, "print.html", pageData{
		Seller:     s.sellerView(),
		Invoice:    rec,
		HasInvoice: true,
	})
}

// handlePDFDownload streams the current invoice as a PDF attachment.
// Export is unavailable while the item list is empty.
func (s *Server) handlePDFDownload(c *gin.Context) {
	rec := s.current()
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No invoice uploaded yet"})
		return
	}

	data, err := s.pdfWriter.Render(*rec)
	if err != nil {
		if errors.GetCode(err) == errors.CodeEmptyInvoice {
			c.JSON(http.StatusConflict, gin.H{"error": "There is nothing to download. Please check your spreadsheet."})
			return
		}
		log.Printf("[handlePDFDownload] FAILED - %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	filename := fmt.Sprintf("GST_Invoice_%s.pdf", rec.Header.Number)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func hasSpreadsheetExtension(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range []string{".xlsx", ".xls", ".csv"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
