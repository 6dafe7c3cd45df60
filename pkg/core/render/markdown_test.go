package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleKPI = `# خدمة العملاء

## نظرة عامة (Overview)
وصف مختصر

---
### 1. جودة الخدمة

#### **مؤشر الأداء (KPI): رضا العملاء**
- **الوصف (Definition):** نسبة العملاء الراضين
- **الهدف المقترح (Target):** 90%

> **نصيحة للتطبيق:** قس شهرياً

| المؤشر | المستهدف | الفعلي |
|---|---|---|
| رضا العملاء | 90% | 75% |
`

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "  # Title \n", "# Title"},
		{"markdown fence", "```markdown\n# Title\n```", "# Title"},
		{"bare fence", "```\n# Title\n```", "# Title"},
		{"inner fence kept", "# T\n```go\nx\n```\ntext", "# T\n```go\nx\n```\ntext"},
		{"only backticks", "```", "```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanMarkdown(tt.in))
		})
	}
}

func TestToHTML_FormattingElements(t *testing.T) {
	out, err := ToHTML(sampleKPI)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, "خدمة العملاء", doc.Find("h1").Text())
	assert.Equal(t, 1, doc.Find("hr").Length())
	assert.Equal(t, 1, doc.Find("h4 strong").Length())
	assert.Equal(t, 2, doc.Find("li strong").Length())
	assert.Equal(t, 1, doc.Find("blockquote").Length())
	assert.Equal(t, 1, doc.Find("table").Length())
	assert.Equal(t, 3, doc.Find("table th").Length())
}

func TestToHTML_DropsRawHTML(t *testing.T) {
	out, err := ToHTML("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestDocument(t *testing.T) {
	out, err := Document("", sampleKPI)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	htmlTag := doc.Find("html")
	dir, _ := htmlTag.Attr("dir")
	lang, _ := htmlTag.Attr("lang")
	assert.Equal(t, "rtl", dir)
	assert.Equal(t, "ar", lang)
	assert.Equal(t, "خدمة العملاء", doc.Find("title").Text())
	assert.True(t, doc.Find("main.report table").HasClass(TableClass))
}

func TestDocument_ExplicitTitle(t *testing.T) {
	out, err := Document("تقرير الأداء", "no heading here")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>تقرير الأداء</title>")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "خدمة العملاء", Title(sampleKPI))
	assert.Equal(t, "", Title("just text"))
}

func TestTitleOr(t *testing.T) {
	assert.Equal(t, "خدمة العملاء", TitleOr(sampleKPI, "توليد مؤشرات الأداء"))
	assert.Equal(t, "تقرير الأداء", TitleOr("| a |\n|---|\n| 1 |", "تقرير الأداء"))
}
