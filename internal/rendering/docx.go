package rendering

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/fumiama/go-docx"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	twipsPerInch = 1440
	emuPerInch   = 914400

	// headerWidth is the combined width of the picture and name columns
	headerWidth = 6.0
)

// Renderer writes a laid-out resume into a .docx document
type Renderer struct {
	styles       *StyleSheet
	pictureWidth float64 // inches
	diagnostics  io.Writer
	logger       *slog.Logger
	template     fs.FS // nil falls back to the library's default theme
}

// Option configures a Renderer
type Option func(*Renderer)

// WithPictureWidth sets the profile picture width in inches
func WithPictureWidth(inches float64) Option {
	return func(r *Renderer) {
		r.pictureWidth = inches
	}
}

// WithDiagnostics sets where recoverable problems are reported to the user
func WithDiagnostics(w io.Writer) Option {
	return func(r *Renderer) {
		r.diagnostics = w
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// NewRenderer creates a Renderer using styles, which must already be configured
func NewRenderer(styles *StyleSheet, opts ...Option) *Renderer {
	r := &Renderer{
		styles:       styles,
		pictureWidth: 1.5,
		diagnostics:  io.Discard,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	template, err := newTemplate(styles)
	if err != nil {
		r.logger.Warn("paragraph styles not embedded", slog.Any("error", err))
	} else {
		r.template = template
	}
	return r
}

// Render lays out bundle and builds the document
func (r *Renderer) Render(bundle *types.Bundle) *docx.Docx {
	return r.Build(Layout(bundle))
}

// Save renders bundle and writes it to path, replacing any existing file
func (r *Renderer) Save(bundle *types.Bundle, path string) error {
	if bundle == nil {
		return &RenderError{Message: "no resume data to render"}
	}
	d := r.Render(bundle)
	if err := WriteFile(d, path); err != nil {
		return err
	}
	r.logger.Debug("document written", slog.String("path", path))
	return nil
}

// Build converts a layout into a document. A profile picture that cannot be
// embedded is reported and left out; nothing else is skipped.
func (r *Renderer) Build(doc *Document) *docx.Docx {
	d := docx.New().WithDefaultTheme()
	if r.template != nil {
		d.UseTemplate("", docx.DefaultTemplateFilesList, r.template)
	}

	r.writeHeader(d, doc.Header)
	for _, b := range doc.Blocks {
		r.writeBlock(d.AddParagraph(), b)
	}

	return d
}

func (r *Renderer) writeHeader(d *docx.Docx, h Header) {
	left := inchesToTwips(r.pictureWidth)
	right := inchesToTwips(headerWidth - r.pictureWidth)
	if right <= 0 {
		right = inchesToTwips(headerWidth)
	}

	tbl := d.AddTableTwips([]int64{0}, []int64{left, right}, 0, nil)
	tbl.Justification(string(AlignCenter))
	tbl.TableProperties.TableBorders = borderless()

	cells := tbl.TableRows[0].TableCells

	pictureParagraph := cells[0].AddParagraph()
	if h.PicturePath != "" {
		if err := r.addPicture(pictureParagraph, h.PicturePath); err != nil {
			_, _ = fmt.Fprintf(r.diagnostics, "Error adding profile picture: %v\n", err)
			r.logger.Warn("profile picture skipped",
				slog.String("path", h.PicturePath),
				slog.Any("error", err),
			)
		}
	}

	nameStyle := r.styles.Resolve(StyleName)
	name := cells[1].AddParagraph().Style(StyleID(StyleName)).Justification(string(AlignRight))
	r.styleRun(addText(name, h.Name), nameStyle, false)

	contact := cells[1].AddParagraph().Justification(string(AlignRight))
	r.styleRun(addText(contact, h.Contact), r.styles.Resolve(StyleNormal), false)
}

// addPicture embeds the image at path, scaled to the configured width
func (r *Renderer) addPicture(p *docx.Paragraph, path string) (err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &PictureError{Path: path, Message: "failed to read picture", Cause: err}
	}

	// the image decoder can panic on degenerate sizes
	defer func() {
		if rec := recover(); rec != nil {
			err = &PictureError{Path: path, Message: "failed to decode picture", Cause: fmt.Errorf("%v", rec)}
		}
	}()

	run, err := p.AddInlineDrawing(data)
	if err != nil {
		return &PictureError{Path: path, Message: "unsupported picture format", Cause: err}
	}

	if drawing, ok := run.Children[0].(*docx.Drawing); ok && drawing.Inline != nil && drawing.Inline.Extent != nil {
		ext := drawing.Inline.Extent
		width := int64(r.pictureWidth * emuPerInch)
		if ext.CX > 0 {
			drawing.Inline.Size(width, width*ext.CY/ext.CX)
		}
	}
	return nil
}

func (r *Renderer) writeBlock(p *docx.Paragraph, b Block) {
	style := r.styles.Resolve(b.Style)
	if b.Style != StyleNormal && r.styles.Has(b.Style) {
		p.Style(StyleID(b.Style))
	}

	if style.SpaceBefore > 0 {
		ensureProperties(p).Spacing = &docx.Spacing{Before: style.SpaceBefore}
	}
	if style.IndentLeft > 0 || style.Hanging > 0 {
		ensureProperties(p).Ind = &docx.Ind{Left: style.IndentLeft, Hanging: style.Hanging}
	}
	if b.Style != StyleName && style.Alignment != "" {
		p.Justification(string(style.Alignment))
	}

	if b.Kind == BlockBullet && style.Bullet != "" {
		r.styleRun(addText(p, style.Bullet+"\t"), style, false)
	}
	for _, run := range b.Runs {
		r.styleRun(addText(p, run.Text), style, run.Bold)
	}
}

func (r *Renderer) styleRun(run *docx.Run, style ParagraphStyle, bold bool) {
	if style.FontFamily != "" {
		run.Font(style.FontFamily, style.FontFamily, style.FontFamily, "")
	}
	if style.SizePt > 0 {
		size := halfPoints(style.SizePt)
		run.Size(size).SizeCs(size)
	}
	if style.Bold || bold {
		run.Bold()
	}
	if style.Color != "" {
		run.Color(style.Color)
	}
}

// WriteFile writes d to path, creating or truncating the file
func WriteFile(d *docx.Docx, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Message: "failed to create output file", Cause: err}
	}

	if _, err := d.WriteTo(f); err != nil {
		_ = f.Close()
		return &WriteError{Path: path, Message: "failed to write document", Cause: err}
	}

	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Message: "failed to close output file", Cause: err}
	}
	return nil
}

// addText appends text as a run, keeping leading and trailing spaces
func addText(p *docx.Paragraph, text string) *docx.Run {
	run := p.AddText(text)
	for _, c := range run.Children {
		if t, ok := c.(*docx.Text); ok {
			t.XMLSpace = "preserve"
		}
	}
	return run
}

func ensureProperties(p *docx.Paragraph) *docx.ParagraphProperties {
	if p.Properties == nil {
		p.Properties = &docx.ParagraphProperties{}
	}
	return p.Properties
}

func borderless() *docx.WTableBorders {
	none := func() *docx.WTableBorder { return &docx.WTableBorder{Val: "none"} }
	return &docx.WTableBorders{
		Top:     none(),
		Left:    none(),
		Bottom:  none(),
		Right:   none(),
		InsideH: none(),
		InsideV: none(),
	}
}

func inchesToTwips(inches float64) int64 {
	return int64(math.Round(inches * twipsPerInch))
}

// halfPoints converts a point size to the half-point string used by w:sz
func halfPoints(pt float64) string {
	return strconv.Itoa(int(math.Round(pt * 2)))
}
