// Package pdf renders generated document text into PDF files. It consumes
// a finished (text, metadata) pair; layout is intentionally simple and is
// not part of any contract.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Document is the content and metadata of a single generated document.
type Document struct {
	ID        string
	Domain    string
	Category  string
	Language  string
	Content   string
	CreatedAt time.Time
}

// Renderer produces A4 ticket-style PDFs with a title header, a metadata
// line and a timestamp footer. Polish body text is mapped through the
// cp1250 code page.
type Renderer struct {
	author string
}

// NewRenderer creates a Renderer. The author string is embedded in the
// PDF document information.
func NewRenderer(author string) *Renderer {
	return &Renderer{author: author}
}

// Render builds the PDF for the document and returns its bytes.
func (r *Renderer) Render(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)

	pdf.SetTitle(fmt.Sprintf("%s - %s", doc.Domain, doc.Category), true)
	pdf.SetAuthor(r.author, true)
	pdf.SetSubject(fmt.Sprintf("Support Ticket - %s", doc.Category), true)
	if !doc.CreatedAt.IsZero() {
		pdf.SetCreationDate(doc.CreatedAt)
	}

	// Central European code page covers the Polish diacritics used by the
	// pl templates.
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")

	pdf.SetFooterFunc(func() {
		pageW, _ := pdf.GetPageSize()
		lm, _, rm, _ := pdf.GetMargins()
		half := (pageW - lm - rm) / 2

		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(153, 153, 153)
		footer := fmt.Sprintf("Generated: %s", doc.CreatedAt.Format("2006-01-02 15:04:05"))
		pdf.CellFormat(half, 5, footer, "", 0, "L", false, 0, "")
		pdf.CellFormat(half, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	lm, _, rm, _ := pdf.GetMargins()
	contentW := pageW - lm - rm

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(26, 26, 26)
	title := fmt.Sprintf("%s Support Ticket", titleCase(doc.Domain))
	pdf.MultiCell(contentW, 8, tr(title), "", "C", false)
	pdf.Ln(2)

	// Metadata line
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(102, 102, 102)
	meta := fmt.Sprintf("Category: %s  |  Language: %s  |  ID: %s",
		doc.Category, strings.ToUpper(doc.Language), shortID(doc.ID))
	pdf.CellFormat(contentW, 5, tr(meta), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Body
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(51, 51, 51)
	for _, para := range strings.Split(doc.Content, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		pdf.MultiCell(contentW, 6, tr(para), "", "L", false)
		pdf.Ln(3)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("rendering pdf for document %s: %w", doc.ID, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf for document %s: %w", doc.ID, err)
	}
	return buf.Bytes(), nil
}

// RenderFile renders the document and writes it atomically to path,
// returning the file size in bytes.
func (r *Renderer) RenderFile(doc *Document, path string) (int64, error) {
	data, err := r.Render(doc)
	if err != nil {
		return 0, err
	}
	if err := writeAtomic(path, data); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

// writeAtomic writes data through a temp file in the target directory and
// renames it into place, so a crash never leaves a partial PDF behind.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp_*.pdf")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s to %s: %w", tmpName, path, err)
	}
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
