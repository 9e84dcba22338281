package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_CollapsesWhitespace(t *testing.T) {
	got := CleanText("python   developer\n\twith  sql")
	assert.Equal(t, "python developer with sql", got)
}

func TestCleanText_KeepsSkillPunctuation(t *testing.T) {
	got := CleanText("c++ and c# developer, node.js (backend)")
	assert.Contains(t, got, "c++")
	assert.Contains(t, got, "c#")
	assert.Contains(t, got, "node.js")
	assert.Contains(t, got, "(backend)")
}

func TestCleanText_StripsSpecialCharacters(t *testing.T) {
	got := CleanText("python | sql * docker")
	assert.NotContains(t, got, "|")
	assert.NotContains(t, got, "*")
	assert.Contains(t, got, "python")
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t "))
}

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText("resume.txt", []byte("python  developer"))
	require.NoError(t, err)
	assert.Equal(t, "python developer", text)
}

func TestExtractText_Markdown(t *testing.T) {
	text, err := ExtractText("resume.md", []byte("# Skills\npython"))
	require.NoError(t, err)
	assert.Contains(t, text, "python")
}

func TestExtractText_HTML(t *testing.T) {
	html := `<html><head><style>body { color: red; }</style></head>
		<body><h1>Jane Doe</h1><p>python developer</p>
		<script>alert("hi");</script></body></html>`

	text, err := ExtractText("resume.html", []byte(html))
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "python developer")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color")
}

func TestExtractText_HTMLFragment(t *testing.T) {
	text, err := ExtractText("resume.htm", []byte("<p>sql analyst</p>"))
	require.NoError(t, err)
	assert.Contains(t, text, "sql analyst")
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("%PDF-1.4"))
	require.Error(t, err)

	var unsupported *ErrUnsupportedFormat
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".pdf", unsupported.Extension)

	_, err = ExtractText("resume.docx", nil)
	assert.ErrorAs(t, err, &unsupported)
}

func TestExtractText_ExtensionCaseInsensitive(t *testing.T) {
	text, err := ExtractText("RESUME.TXT", []byte("python"))
	require.NoError(t, err)
	assert.Equal(t, "python", text)
}
