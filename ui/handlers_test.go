package ui

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"gstinvoice/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", GinMode: gin.TestMode},
		Upload: config.UploadConfig{MaxBytes: 1024 * 1024},
		Seller: config.SellerConfig{
			Name: "Test Seller Pvt Ltd", GSTIN: "24TEST0000A1Z5",
			State: "Gujarat", Country: "India",
			Phone: "0000000000", Email: "billing@example.com",
			Notes: "Fees are non-refundable.",
		},
	}
	s, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func uploadBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("spreadsheet", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func doUpload(t *testing.T, s *Server, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := uploadBody(t, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/api/invoices/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

const fullFormCSV = `Headers,,,,
INV-42,01/01/2024,05/01/2024,Gujarat (24),
Acme Pvt Ltd,12 MG Road,Vadodara,Gujarat,390019,India
Widget,8471,2,100,9,9
Gadget,8517,1,250,9,9
`

func TestUpload_ReplacesCurrentInvoice(t *testing.T) {
	s := newTestServer(t)

	resp := doUpload(t, s, "invoice.csv", fullFormCSV)
	if resp.Code != http.StatusOK {
		t.Fatalf("upload status = %d, body = %s", resp.Code, resp.Body.String())
	}

	var result struct {
		InvoiceNumber string  `json:"invoiceNumber"`
		ItemCount     int     `json:"itemCount"`
		TotalAmount   float64 `json:"totalAmount"`
		Exportable    bool    `json:"exportable"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.InvoiceNumber != "INV-42" || result.ItemCount != 2 || !result.Exportable {
		t.Errorf("result = %+v", result)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/current", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("current status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "INV-42") {
		t.Errorf("current invoice body missing invoice number: %s", rec.Body.String())
	}
}

func TestUpload_FailureKeepsPriorRecord(t *testing.T) {
	s := newTestServer(t)

	if resp := doUpload(t, s, "invoice.csv", fullFormCSV); resp.Code != http.StatusOK {
		t.Fatalf("seed upload status = %d", resp.Code)
	}

	// A corrupt workbook is a hard decode failure; the previous record
	// must remain on display.
	resp := doUpload(t, s, "broken.xlsx", "this is not a zip archive")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("corrupt upload status = %d", resp.Code)
	}

	rec := s.current()
	if rec == nil || rec.Header.Number != "INV-42" {
		t.Errorf("prior record lost after failed upload: %+v", rec)
	}
}

func TestUpload_RejectsUnknownExtension(t *testing.T) {
	s := newTestServer(t)
	resp := doUpload(t, s, "invoice.txt", "whatever")
	if resp.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.Code)
	}
}

func TestCurrentInvoice_NotFoundBeforeUpload(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/invoices/current", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestPDFDownload_UnavailableForEmptyInvoice(t *testing.T) {
	s := newTestServer(t)

	// Header-only sheet: decodes fine but yields zero items, so export
	// stays disabled.
	if resp := doUpload(t, s, "empty.csv", "Headers\n"); resp.Code != http.StatusOK {
		t.Fatalf("upload status = %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/invoices/current/pdf", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("pdf status = %d, want 409", rec.Code)
	}
}

func TestPDFDownload_StreamsAttachment(t *testing.T) {
	s := newTestServer(t)
	if resp := doUpload(t, s, "invoice.csv", fullFormCSV); resp.Code != http.StatusOK {
		t.Fatalf("upload status = %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/invoices/current/pdf", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("pdf status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "GST_Invoice_INV-42.pdf") {
		t.Errorf("disposition = %q", rec.Header().Get("Content-Disposition"))
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}
}

func TestIndex_RendersUploadPage(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "GST Invoice Generator") {
		t.Error("index page missing title")
	}
}

func TestPrintView_RendersInvoice(t *testing.T) {
	s := newTestServer(t)
	if resp := doUpload(t, s, "invoice.csv", fullFormCSV); resp.Code != http.StatusOK {
		t.Fatalf("upload status = %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/invoices/current/print", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "TAX INVOICE") || !strings.Contains(body, "Acme Pvt Ltd") {
		t.Error("print view missing invoice content")
	}
	if !strings.Contains(body, "Indian Rupee") {
		t.Error("print view missing amount in words")
	}
}
