package rendering

import (
	"archive/zip"
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readZipEntry returns one part of a saved .docx package
func readZipEntry(t *testing.T, path, name string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("%s not found in %s", name, path)
	return ""
}

func paragraphStyle(p *docx.Paragraph) string {
	if p.Properties == nil || p.Properties.Style == nil {
		return ""
	}
	return p.Properties.Style.Val
}

func TestStyleID(t *testing.T) {
	assert.Equal(t, "a", StyleID(StyleNormal))
	assert.Equal(t, "Heading1", StyleID(StyleHeading1))
	assert.Equal(t, "ListBullet", StyleID(StyleListBullet))
	assert.Equal(t, "NameStyle", StyleID(StyleName))
}

func TestNewTemplate_StylesXMLCarriesSheetStyles(t *testing.T) {
	tmpl, err := newTemplate(testStyles())
	require.NoError(t, err)

	data, err := fs.ReadFile(tmpl, stylesPath)
	require.NoError(t, err)
	styles := string(data)

	assert.Contains(t, styles, `w:styleId="a"`, "template styles must be kept")
	assert.Contains(t, styles, `w:styleId="Heading1"><w:name w:val="heading 1"/>`)
	assert.Contains(t, styles, `<w:outlineLvl w:val="0"/>`)
	assert.Contains(t, styles, `w:customStyle="1" w:styleId="NameStyle"><w:name w:val="Name Style"/>`)
	assert.Contains(t, styles, `w:styleId="ListBullet"><w:name w:val="List Bullet"/>`)
	assert.Contains(t, styles, `<w:ind w:left="720" w:hanging="360"/>`)
	assert.Contains(t, styles, `w:ascii="Calibri"`)
	assert.Equal(t, 1, bytes.Count(data, []byte("</w:styles>")))
	assert.True(t, bytes.HasSuffix(bytes.TrimSpace(data), []byte("</w:styles>")))
}

func TestNewTemplate_ServesOtherTemplateParts(t *testing.T) {
	tmpl, err := newTemplate(testStyles())
	require.NoError(t, err)

	for _, name := range docx.DefaultTemplateFilesList {
		f, err := tmpl.Open(name)
		require.NoError(t, err, name)
		require.NoError(t, f.Close())
	}
}

func TestWriteStyleXML_EscapesFontName(t *testing.T) {
	var buf bytes.Buffer
	writeStyleXML(&buf, ParagraphStyle{Name: "Fancy", FontFamily: `A&B "Sans"`})

	assert.Contains(t, buf.String(), `w:ascii="A&amp;B &#34;Sans&#34;"`)
	assert.NotContains(t, buf.String(), "outlineLvl")
}

func TestSave_WritesNamedStyles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Your_Resume1.docx")
	r := NewRenderer(testStyles())
	require.NoError(t, r.Save(fullBundle(), path))

	styles := readZipEntry(t, path, stylesPath)
	assert.Contains(t, styles, `w:styleId="Heading1"`)
	assert.Contains(t, styles, `w:styleId="NameStyle"`)
	assert.Contains(t, styles, `w:styleId="ListBullet"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	parsed, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	byText := map[string]string{}
	for _, it := range parsed.Document.Body.Items {
		if p, ok := it.(*docx.Paragraph); ok {
			byText[p.String()] = paragraphStyle(p)
		}
	}
	assert.Equal(t, "Heading1", byText["Certifications"])
	assert.Equal(t, "Heading1", byText["Personal Information"])
	assert.Equal(t, "", byText["BSc, MIT (2019)"])
}

func TestBuild_TagsParagraphsWithStyleIDs(t *testing.T) {
	d := NewRenderer(testStyles()).Render(janeDoe())

	name := headerCells(t, d)[1].Paragraphs[0]
	assert.Equal(t, "NameStyle", paragraphStyle(name))

	var bullets, headings int
	for _, it := range d.Document.Body.Items[1:] {
		p := it.(*docx.Paragraph)
		switch paragraphStyle(p) {
		case "Heading1":
			headings++
		case "ListBullet":
			bullets++
		}
	}
	assert.Positive(t, headings)
	assert.Positive(t, bullets)
}
