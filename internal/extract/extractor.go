// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"lexiscan/internal/observability"
)

// maxPages bounds how many PDF pages one document contributes.
// Longer documents are truncated, not rejected.
const maxPages = 50

// Extractor turns an input document into analyzable text. PDFs are
// validated and extracted page by page; anything else is treated as
// plain text.
type Extractor struct {
	pdfConfig *model.Configuration
	observer  *observability.StandardObserver
}

// NewExtractor creates an extractor with relaxed PDF validation, so
// slightly malformed but readable documents still extract.
func NewExtractor() *Extractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Extractor{pdfConfig: conf}
}

// SetObserver sets the observability component
func (e *Extractor) SetObserver(observer *observability.StandardObserver) {
	e.observer = observer
}

// Extract returns the text content of the file. Extraction failures
// are fatal to the document's analysis; there are no partial results.
func (e *Extractor) Extract(filePath string) (string, error) {
	var finishTiming func(bool, map[string]interface{})
	if e.observer != nil {
		finishTiming = e.observer.StartTiming("extractor", "extract", filePath)
	}

	var text string
	var err error
	if strings.EqualFold(filepath.Ext(filePath), ".pdf") {
		text, err = e.extractPDF(filePath)
	} else {
		text, err = readPlainText(filePath)
	}

	if finishTiming != nil {
		finishTiming(err == nil, map[string]interface{}{
			"text_length": len(text),
		})
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

// extractPDF validates the file and pulls text from every page, up to
// the page limit.
func (e *Extractor) extractPDF(filePath string) (string, error) {
	if err := api.ValidateFile(filePath, e.pdfConfig); err != nil {
		return "", fmt.Errorf("invalid PDF %s: %w", filepath.Base(filePath), err)
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("error opening PDF %s: %w", filepath.Base(filePath), err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pageCount > maxPages {
		pageCount = maxPages
		if e.observer != nil && e.observer.DebugObserver != nil {
			e.observer.DebugObserver.LogDetail("extractor",
				fmt.Sprintf("truncating to first %d pages", maxPages))
		}
	}

	var buf bytes.Buffer
	failedPages := 0
	for i := 1; i <= pageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			failedPages++
			continue
		}
		pageText, err := pageTextWithSpacing(p)
		if err != nil {
			failedPages++
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(pageText)
	}

	if failedPages == pageCount {
		return "", fmt.Errorf("no extractable text in %s", filepath.Base(filePath))
	}
	if e.observer != nil && e.observer.DebugObserver != nil && failedPages > 0 {
		e.observer.DebugObserver.LogDetail("extractor",
			fmt.Sprintf("%d of %d pages failed extraction", failedPages, pageCount))
	}

	text := normalizeWhitespace(buf.String())
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no extractable text in %s", filepath.Base(filePath))
	}
	return text, nil
}

// readPlainText loads a non-PDF document verbatim.
func readPlainText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", filepath.Base(filePath), err)
	}
	return string(data), nil
}

// pageTextWithSpacing extracts one page using row positions so words
// separated only by coordinates still get spaces between them.
func pageTextWithSpacing(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		// Row extraction fails on some generators; plain extraction
		// loses spacing fidelity but still yields text.
		return p.GetPlainText(nil)
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}
	// Y grows bottom-up in PDF space; ascending average Y reads the
	// page top to bottom for this library's row representation.
	sort.Slice(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) < averageY(sortedRows[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sortedRows {
		line := joinRowText(row.Content)
		if strings.TrimSpace(line) != "" {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}

func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, el := range elements {
		total += el.Y
	}
	return total / float64(len(elements))
}

// joinRowText orders a row's fragments left to right and inserts a
// space wherever the coordinate gap is wide relative to the font size.
func joinRowText(elements []pdf.Text) string {
	if len(elements) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, el := range sorted {
		buf.WriteString(el.S)
		if i == len(sorted)-1 {
			continue
		}
		gap := sorted[i+1].X - (el.X + el.W)
		fontSize := el.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}
		if gap > fontSize*0.2 {
			buf.WriteString(" ")
		}
	}
	return buf.String()
}

// normalizeWhitespace trims lines, drops empty ones, and collapses
// runs of spaces while keeping line breaks intact.
func normalizeWhitespace(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\t", " "), "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		for strings.Contains(line, "  ") {
			line = strings.ReplaceAll(line, "  ", " ")
		}
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
