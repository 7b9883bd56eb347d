package extraction

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Text extracts plain text from a resume document, dispatching on the file
// extension. The returned text is normalized (see CleanText) but keeps its
// line structure, which the work-experience segmentation depends on.
func Text(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return fromPDF(data)
	case ".docx", ".doc":
		return fromDocx(data)
	case ".txt":
		return CleanText(string(data)), nil
	case ".html", ".htm":
		return fromHTML(data)
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Format: "pdf", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return CleanText(sb.String()), nil
}

func fromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Format: "docx", Cause: err}
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	// Paragraph boundaries become newlines before the tags are stripped, so
	// the segmenter still sees one paragraph per line.
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = stripTags(content)
	return CleanText(content), nil
}

func fromHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &DecodeError{Format: "html", Cause: err}
	}
	doc.Find("script, style").Remove()

	// Prefer block-level elements so each heading, paragraph, and list item
	// lands on its own line.
	var lines []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	if len(lines) == 0 {
		return CleanText(doc.Text()), nil
	}
	return CleanText(strings.Join(lines, "\n")), nil
}

// stripTags removes XML/HTML tags from docx body content.
func stripTags(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			sb.WriteRune(' ')
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
