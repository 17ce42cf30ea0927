package rendering

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "me.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

// bodyTexts returns the text of every body paragraph after the header table
func bodyTexts(t *testing.T, d *docx.Docx) []string {
	t.Helper()
	items := d.Document.Body.Items
	require.NotEmpty(t, items)
	_, ok := items[0].(*docx.Table)
	require.True(t, ok, "document must start with the header table")

	texts := make([]string, 0, len(items)-1)
	for _, it := range items[1:] {
		p, ok := it.(*docx.Paragraph)
		require.True(t, ok)
		texts = append(texts, p.String())
	}
	return texts
}

func headerCells(t *testing.T, d *docx.Docx) []*docx.WTableCell {
	t.Helper()
	tbl, ok := d.Document.Body.Items[0].(*docx.Table)
	require.True(t, ok)
	require.Len(t, tbl.TableRows, 1)
	require.Len(t, tbl.TableRows[0].TableCells, 2)
	return tbl.TableRows[0].TableCells
}

func findDrawing(p *docx.Paragraph) *docx.Drawing {
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, c := range run.Children {
			if d, ok := c.(*docx.Drawing); ok {
				return d
			}
		}
	}
	return nil
}

func TestBuild_EndToEndScenario(t *testing.T) {
	r := NewRenderer(testStyles())

	d := r.Render(janeDoe())

	cells := headerCells(t, d)
	require.Len(t, cells[1].Paragraphs, 2)
	assert.Equal(t, "Jane Doe", cells[1].Paragraphs[0].String())
	assert.Equal(t, "", cells[1].Paragraphs[1].String())

	assert.Equal(t, []string{
		"\n",
		"",
		"Skills",
		"Languages: Python, Go",
		"Experience",
		"Engineer, Acme (2020-2022)",
		"•\tBuilt X",
		"Languages",
		"English",
	}, bodyTexts(t, d))
}

func TestBuild_BoldRuns(t *testing.T) {
	r := NewRenderer(testStyles())

	d := r.Render(janeDoe())

	// items: table, spacer, spacer, heading, skills paragraph
	skills, ok := d.Document.Body.Items[4].(*docx.Paragraph)
	require.True(t, ok)
	require.Len(t, skills.Children, 2)

	category := skills.Children[0].(*docx.Run)
	list := skills.Children[1].(*docx.Run)
	assert.NotNil(t, category.RunProperties.Bold)
	assert.Nil(t, list.RunProperties.Bold)
	assert.Equal(t, "22", list.RunProperties.Size.Val)
	assert.Equal(t, "Calibri", list.RunProperties.Fonts.ASCII)
}

func TestBuild_NameUsesNameStyle(t *testing.T) {
	r := NewRenderer(testStyles())

	cells := headerCells(t, r.Render(janeDoe()))

	name := cells[1].Paragraphs[0]
	require.NotNil(t, name.Properties)
	assert.Equal(t, "end", name.Properties.Justification.Val)
	run := name.Children[0].(*docx.Run)
	assert.Equal(t, "48", run.RunProperties.Size.Val)
	assert.NotNil(t, run.RunProperties.Bold)
}

func TestBuild_IsDeterministic(t *testing.T) {
	r := NewRenderer(testStyles())
	b := fullBundle()

	assert.Equal(t, bodyTexts(t, r.Render(b)), bodyTexts(t, r.Render(b)))
}

func TestBuild_WithPicture(t *testing.T) {
	b := janeDoe()
	b.ProfilePicture = writePNG(t, 4, 2)
	var diag bytes.Buffer
	r := NewRenderer(testStyles(), WithDiagnostics(&diag))

	d := r.Render(b)

	cells := headerCells(t, d)
	require.Len(t, cells[0].Paragraphs, 1)
	drawing := findDrawing(cells[0].Paragraphs[0])
	require.NotNil(t, drawing)
	require.NotNil(t, drawing.Inline)
	assert.Equal(t, int64(1371600), drawing.Inline.Extent.CX)
	assert.Equal(t, int64(685800), drawing.Inline.Extent.CY)
	assert.Empty(t, diag.String())
}

func TestBuild_PictureWidthOption(t *testing.T) {
	b := janeDoe()
	b.ProfilePicture = writePNG(t, 2, 2)
	r := NewRenderer(testStyles(), WithPictureWidth(1))

	cells := headerCells(t, r.Render(b))

	drawing := findDrawing(cells[0].Paragraphs[0])
	require.NotNil(t, drawing)
	assert.Equal(t, int64(914400), drawing.Inline.Extent.CX)
	assert.Equal(t, int64(914400), drawing.Inline.Extent.CY)
}

func TestBuild_MissingPictureIsReportedAndSkipped(t *testing.T) {
	b := janeDoe()
	b.ProfilePicture = filepath.Join(t.TempDir(), "missing.png")
	var diag bytes.Buffer
	r := NewRenderer(testStyles(), WithDiagnostics(&diag))

	d := r.Render(b)

	assert.True(t, strings.HasPrefix(diag.String(), "Error adding profile picture: "))
	assert.Contains(t, diag.String(), "missing.png")
	cells := headerCells(t, d)
	assert.Nil(t, findDrawing(cells[0].Paragraphs[0]))
	assert.Equal(t, bodyTexts(t, NewRenderer(testStyles()).Render(janeDoe())), bodyTexts(t, d))
}

func TestBuild_NonImagePictureIsReportedAndSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("definitely not an image"), 0644))
	b := janeDoe()
	b.ProfilePicture = path
	var diag bytes.Buffer
	r := NewRenderer(testStyles(), WithDiagnostics(&diag))

	d := r.Render(b)

	assert.Contains(t, diag.String(), "Error adding profile picture: ")
	assert.Contains(t, diag.String(), "unsupported picture format")
	assert.Nil(t, findDrawing(headerCells(t, d)[0].Paragraphs[0]))
	assert.Contains(t, bodyTexts(t, d), "Skills")
}

func TestAddPicture_ReturnsPictureError(t *testing.T) {
	r := NewRenderer(testStyles())
	p := docx.New().WithDefaultTheme().AddParagraph()

	err := r.addPicture(p, "/nonexistent/me.png")

	var picErr *PictureError
	require.ErrorAs(t, err, &picErr)
	assert.Equal(t, "/nonexistent/me.png", picErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSave_WritesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Your_Resume1.docx")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is not a zip"), 0644))
	r := NewRenderer(testStyles())

	require.NoError(t, r.Save(fullBundle(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(data[:2]))

	parsed, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var texts []string
	for _, it := range parsed.Document.Body.Items {
		if p, ok := it.(*docx.Paragraph); ok {
			texts = append(texts, p.String())
		}
	}
	assert.Contains(t, texts, "Certifications")
	assert.Contains(t, texts, "Personal Information")
	assert.Contains(t, texts, "BSc, MIT (2019)")
}

func TestSave_UnwritablePath(t *testing.T) {
	r := NewRenderer(testStyles())

	err := r.Save(janeDoe(), filepath.Join(t.TempDir(), "missing", "out.docx"))

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestSave_NilBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")

	err := NewRenderer(testStyles()).Save(nil, path)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.NoFileExists(t, path)
}

func TestHalfPoints(t *testing.T) {
	assert.Equal(t, "22", halfPoints(11))
	assert.Equal(t, "21", halfPoints(10.5))
	assert.Equal(t, "48", halfPoints(24))
}

func TestInchesToTwips(t *testing.T) {
	assert.Equal(t, int64(2160), inchesToTwips(1.5))
	assert.Equal(t, int64(6480), inchesToTwips(4.5))
}

func TestBuild_EmptyBundleStillHasHeader(t *testing.T) {
	d := NewRenderer(testStyles()).Render(types.NewBundle())

	cells := headerCells(t, d)
	assert.Equal(t, "", cells[1].Paragraphs[0].String())
	assert.Equal(t, []string{"\n", ""}, bodyTexts(t, d))
}
