package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText = "text/plain"
)

// ExtractionError reports an uploaded document that could not be turned into text.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// IsExtractionError reports whether err is, or wraps, an *ExtractionError.
func IsExtractionError(err error) bool {
	var extractionErr *ExtractionError
	return errors.As(err, &extractionErr)
}

type DocumentExtractor interface {
	ExtractText(data []byte, filename string) (*DocumentContent, error)
}

type DocumentContent struct {
	Text        string
	ContentType string
	PageCount   int
}

type documentExtractor struct{}

func NewDocumentExtractor() DocumentExtractor {
	return &documentExtractor{}
}

// ExtractText implements DocumentExtractor.
func (d *documentExtractor) ExtractText(data []byte, filename string) (*DocumentContent, error) {
	if len(data) == 0 {
		return nil, &ExtractionError{Message: "document is empty"}
	}

	contentType := detectContentType(data, filename)

	var (
		content *DocumentContent
		err     error
	)
	switch contentType {
	case MIMEPDF:
		content, err = extractPDF(data)
	case MIMEDOCX:
		content, err = extractDOCX(data)
	case MIMEText:
		content, err = extractPlainText(data)
	default:
		return nil, &ExtractionError{Message: fmt.Sprintf("unsupported document type: %s", contentType)}
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(content.Text) == "" {
		return nil, &ExtractionError{Message: "no text content found in document"}
	}

	content.ContentType = contentType
	return content, nil
}

func detectContentType(data []byte, filename string) string {
	detected := mimetype.Detect(data)
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case detected.Is(MIMEPDF):
		return MIMEPDF
	case detected.Is(MIMEDOCX):
		return MIMEDOCX
	case detected.Is("application/zip") && ext == ".docx":
		// Some writers order zip entries so the docx signature is not seen.
		return MIMEDOCX
	}

	// csv, tsv, json and friends are all text/plain descendants
	for m := detected; m != nil; m = m.Parent() {
		if m.Is(MIMEText) {
			return MIMEText
		}
	}

	return detected.String()
}

func extractPDF(data []byte) (content *DocumentContent, err error) {
	// The pdf package panics on some malformed object graphs.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = &ExtractionError{Message: "malformed PDF", Cause: fmt.Errorf("%v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ExtractionError{Message: "failed to open PDF", Cause: err}
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, the rest of the document may still have text
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return &DocumentContent{
		Text:      textBuilder.String(),
		PageCount: totalPage,
	}, nil
}

func extractDOCX(data []byte) (*DocumentContent, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ExtractionError{Message: "failed to open DOCX", Cause: err}
	}
	defer doc.Close()

	text, err := wordXMLText(doc.Editable().GetContent())
	if err != nil {
		return nil, &ExtractionError{Message: "failed to read DOCX body", Cause: err}
	}

	return &DocumentContent{
		Text:      text,
		PageCount: 1,
	}, nil
}

// wordXMLText flattens WordprocessingML into plain text, one line per paragraph.
func wordXMLText(body string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(body))

	var (
		textBuilder strings.Builder
		inText      bool
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				textBuilder.WriteString("\t")
			case "br":
				textBuilder.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				textBuilder.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				textBuilder.Write(t)
			}
		}
	}

	return textBuilder.String(), nil
}

func extractPlainText(data []byte) (*DocumentContent, error) {
	if !utf8.Valid(data) {
		return nil, &ExtractionError{Message: "text document is not valid UTF-8"}
	}

	return &DocumentContent{
		Text:      string(data),
		PageCount: 1,
	}, nil
}

// CleanText trims every line and drops blank ones.
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
