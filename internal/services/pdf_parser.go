package services

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

type PDFParserService interface {
	// ExtractText never fails: missing, unreadable or unparsable documents yield "".
	ExtractText(filePath string) string
	ExtractTextWithMetaData(filePath string) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
	FilePath  string
}

type pdfParserService struct {
	logger *zap.Logger
}

func NewPDFParserService(logger *zap.Logger) PDFParserService {
	return &pdfParserService{logger: logger}
}

func (p *pdfParserService) ExtractText(filePath string) (text string) {
	if strings.TrimSpace(filePath) == "" {
		return ""
	}

	// The pdf reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("document extraction panicked",
				zap.String("path", filePath),
				zap.Any("panic", r),
			)
			text = ""
		}
	}()

	content, err := p.extract(filePath)
	if err != nil {
		p.logger.Debug("document extraction failed",
			zap.String("path", filePath),
			zap.Error(err),
		)
		return ""
	}

	return content.Text
}

func (p *pdfParserService) ExtractTextWithMetaData(filePath string) (*PDFContent, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	content, err := p.extract(filePath)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(content.Text) == "" {
		return nil, fmt.Errorf("no text content found in document")
	}

	return content, nil
}

func (p *pdfParserService) extract(filePath string) (*PDFContent, error) {
	if strings.EqualFold(filepath.Ext(filePath), ".docx") {
		return extractDocx(filePath)
	}
	return extractPDF(filePath)
}

func extractPDF(filePath string) (*PDFContent, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip the page, keep the rest.
			continue
		}

		pages = append(pages, text)
	}

	return &PDFContent{
		Text:      strings.Join(pages, "\n"),
		PageCount: totalPage,
		FilePath:  filePath,
	}, nil
}

func extractDocx(filePath string) (*PDFContent, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer r.Close()

	return &PDFContent{
		Text:      docxPlainText(r.Editable().GetContent()),
		PageCount: 1,
		FilePath:  filePath,
	}, nil
}

// docxPlainText turns document.xml into text, one paragraph per line.
func docxPlainText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")
	return CleanText(html.UnescapeString(content))
}

// CleanText trims each line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}

// truncateRunes keeps at most limit runes of s.
func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
