// Package render turns generated markdown into printable HTML.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const TableClass = "kpi-table"

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// CleanMarkdown strips an outer markdown code fence the model sometimes
// wraps its whole answer in.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)

	if strings.HasPrefix(cleaned, "```markdown") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```markdown")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") && len(cleaned) >= 6 {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}

// ToHTML converts markdown to an HTML fragment. Raw HTML in the input is
// not passed through.
func ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(CleanMarkdown(markdown)), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}

const documentShell = `<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head>
<meta charset="utf-8">
<title></title>
<style>
body { font-family: "Noto Naskh Arabic", "Segoe UI", Tahoma, sans-serif; line-height: 1.7; margin: 2rem; color: #1e293b; }
h1, h2, h3, h4 { color: #312e81; }
hr { border: 0; border-top: 1px solid #cbd5e1; margin: 2rem 0; }
blockquote { border-inline-start: 4px solid #6366f1; background: #eef2ff; margin: 1rem 0; padding: .5rem 1rem; }
table.kpi-table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
table.kpi-table th, table.kpi-table td { border: 1px solid #cbd5e1; padding: .5rem; text-align: start; }
table.kpi-table th { background: #f1f5f9; }
@media print { body { margin: 0; } hr { page-break-after: avoid; } }
</style>
</head>
<body><main class="report"></main></body>
</html>`

// Document renders a standalone right-to-left HTML page ready for printing.
// When title is empty the first h1 of the content is used.
func Document(title, markdown string) (string, error) {
	fragment, err := ToHTML(markdown)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(documentShell))
	if err != nil {
		return "", fmt.Errorf("failed to parse document shell: %w", err)
	}

	report := doc.Find("main.report")
	report.SetHtml(fragment)
	report.Find("table").AddClass(TableClass)
	report.Find("a").SetAttr("rel", "noopener noreferrer")

	if title == "" {
		title = strings.TrimSpace(report.Find("h1").First().Text())
	}
	doc.Find("title").SetText(title)

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}
	return out, nil
}

// Title returns the text of the first h1 in markdown, or "".
func Title(markdown string) string {
	fragment, err := ToHTML(markdown)
	if err != nil {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// TitleOr returns Title(markdown), or fallback when the text has no h1.
func TitleOr(markdown, fallback string) string {
	if title := Title(markdown); title != "" {
		return title
	}
	return fallback
}
