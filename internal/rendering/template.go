package rendering

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/fumiama/go-docx"
)

const (
	templateRoot = "xml/default"
	stylesPath   = "word/styles.xml"
)

// builtinStyleNames maps style names onto the names Word gives its built-in
// styles, so headings show up in the navigation pane and tables of contents
var builtinStyleNames = map[string]string{
	StyleHeading1:   "heading 1",
	StyleListBullet: "List Bullet",
}

// templateFS serves the library's default template with the style sheet's
// paragraph styles added to word/styles.xml
type templateFS struct {
	styles []byte
}

// newTemplate builds the document template for sheet
func newTemplate(sheet *StyleSheet) (fs.FS, error) {
	base, err := fs.ReadFile(docx.TemplateXMLFS, path.Join(templateRoot, stylesPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read template styles: %w", err)
	}

	end := bytes.LastIndex(base, []byte("</w:styles>"))
	if end < 0 {
		return nil, fmt.Errorf("template styles have no closing </w:styles>")
	}

	var styles bytes.Buffer
	styles.Write(base[:end])
	for _, name := range sheet.Names() {
		if name == StyleNormal {
			continue
		}
		writeStyleXML(&styles, sheet.Resolve(name))
	}
	styles.Write(base[end:])

	return templateFS{styles: styles.Bytes()}, nil
}

func (t templateFS) Open(name string) (fs.File, error) {
	if name == stylesPath {
		return &memFile{Reader: bytes.NewReader(t.styles), name: path.Base(name), size: int64(len(t.styles))}, nil
	}
	return docx.TemplateXMLFS.Open(path.Join(templateRoot, name))
}

// writeStyleXML appends one w:style paragraph definition
func writeStyleXML(buf *bytes.Buffer, style ParagraphStyle) {
	name, builtin := builtinStyleNames[style.Name]
	if !builtin {
		name = style.Name
	}

	buf.WriteString(`<w:style w:type="paragraph"`)
	if !builtin {
		buf.WriteString(` w:customStyle="1"`)
	}
	fmt.Fprintf(buf, ` w:styleId="%s">`, escapeAttr(StyleID(style.Name)))
	fmt.Fprintf(buf, `<w:name w:val="%s"/>`, escapeAttr(name))
	fmt.Fprintf(buf, `<w:basedOn w:val="%s"/><w:next w:val="%s"/><w:qFormat/>`, normalStyleID, normalStyleID)

	buf.WriteString(`<w:pPr>`)
	if style.Heading {
		buf.WriteString(`<w:keepNext/>`)
	}
	if style.SpaceBefore > 0 {
		fmt.Fprintf(buf, `<w:spacing w:before="%d"/>`, style.SpaceBefore)
	}
	if style.IndentLeft > 0 || style.Hanging > 0 {
		fmt.Fprintf(buf, `<w:ind w:left="%d" w:hanging="%d"/>`, style.IndentLeft, style.Hanging)
	}
	if style.Alignment != "" {
		fmt.Fprintf(buf, `<w:jc w:val="%s"/>`, style.Alignment)
	}
	if style.Heading {
		buf.WriteString(`<w:outlineLvl w:val="0"/>`)
	}
	buf.WriteString(`</w:pPr>`)

	buf.WriteString(`<w:rPr>`)
	if style.FontFamily != "" {
		font := escapeAttr(style.FontFamily)
		fmt.Fprintf(buf, `<w:rFonts w:ascii="%s" w:eastAsia="%s" w:hAnsi="%s" w:cs="%s"/>`, font, font, font, font)
	}
	if style.Bold {
		buf.WriteString(`<w:b/><w:bCs/>`)
	}
	if style.Color != "" {
		fmt.Fprintf(buf, `<w:color w:val="%s"/>`, escapeAttr(style.Color))
	}
	if style.SizePt > 0 {
		size := halfPoints(style.SizePt)
		fmt.Fprintf(buf, `<w:sz w:val="%s"/><w:szCs w:val="%s"/>`, size, size)
	}
	buf.WriteString(`</w:rPr></w:style>`)
}

func escapeAttr(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}

// memFile is an in-memory fs.File
type memFile struct {
	*bytes.Reader
	name string
	size int64
}

func (f *memFile) Stat() (fs.FileInfo, error) { return f, nil }
func (f *memFile) Close() error               { return nil }
func (f *memFile) Name() string               { return f.name }
func (f *memFile) Size() int64                { return f.size }
func (f *memFile) Mode() fs.FileMode          { return 0444 }
func (f *memFile) ModTime() time.Time         { return time.Time{} }
func (f *memFile) IsDir() bool                { return false }
func (f *memFile) Sys() any                   { return nil }
