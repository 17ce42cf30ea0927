package rendering

import "strings"

// Style names used by the layout
const (
	StyleNormal     = "Normal"
	StyleName       = "Name Style"
	StyleHeading1   = "Heading 1"
	StyleListBullet = "List Bullet"
)

// Alignment values understood by w:jc
type Alignment string

const (
	AlignLeft   Alignment = "start"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "end"
)

// ParagraphStyle is a named set of paragraph and run properties.
// Zero-valued fields fall back to the Normal style when resolved.
type ParagraphStyle struct {
	Name        string
	FontFamily  string
	SizePt      float64
	Bold        bool
	Color       string // RRGGBB
	Alignment   Alignment
	SpaceBefore int // twips
	IndentLeft  int // twips
	Hanging     int // twips
	Bullet      string
	Heading     bool // level-one outline entry
}

// normalStyleID is the w:styleId the document template gives its Normal style
const normalStyleID = "a"

// StyleID returns the w:styleId written for a style name
func StyleID(name string) string {
	if name == StyleNormal {
		return normalStyleID
	}
	return strings.ReplaceAll(name, " ", "")
}

// StyleSheet holds the named styles of one document
type StyleSheet struct {
	styles map[string]ParagraphStyle
	order  []string
}

// NewStyleSheet returns a style sheet holding only normal as the Normal style
func NewStyleSheet(normal ParagraphStyle) *StyleSheet {
	normal.Name = StyleNormal
	return &StyleSheet{
		styles: map[string]ParagraphStyle{StyleNormal: normal},
		order:  []string{StyleNormal},
	}
}

// Has reports whether a style with this name exists
func (s *StyleSheet) Has(name string) bool {
	_, ok := s.styles[name]
	return ok
}

// Register adds style unless one with the same name already exists.
// It reports whether the style was added.
func (s *StyleSheet) Register(style ParagraphStyle) bool {
	if s.Has(style.Name) {
		return false
	}
	s.styles[style.Name] = style
	s.order = append(s.order, style.Name)
	return true
}

// Names returns style names in registration order
func (s *StyleSheet) Names() []string {
	return append([]string(nil), s.order...)
}

// Resolve returns the named style with unset font properties taken from Normal.
// Unknown names resolve to Normal.
func (s *StyleSheet) Resolve(name string) ParagraphStyle {
	normal := s.styles[StyleNormal]
	style, ok := s.styles[name]
	if !ok {
		return normal
	}
	if style.FontFamily == "" {
		style.FontFamily = normal.FontFamily
	}
	if style.SizePt == 0 {
		style.SizePt = normal.SizePt
	}
	return style
}

// StyleOptions are the configurable parts of the default style sheet
type StyleOptions struct {
	FontFamily  string
	BodySize    float64
	NameSize    float64
	HeadingSize float64
}

// ConfigureStyles builds the style sheet for a resume. It runs once, before
// any content is appended.
func ConfigureStyles(opts StyleOptions) *StyleSheet {
	sheet := NewStyleSheet(ParagraphStyle{
		FontFamily: opts.FontFamily,
		SizePt:     opts.BodySize,
	})
	sheet.Register(ParagraphStyle{
		Name:       StyleName,
		FontFamily: opts.FontFamily,
		SizePt:     opts.NameSize,
		Bold:       true,
		Alignment:  AlignRight,
	})
	sheet.Register(ParagraphStyle{
		Name:        StyleHeading1,
		SizePt:      opts.HeadingSize,
		Bold:        true,
		Color:       "2E74B5",
		SpaceBefore: 240,
		Heading:     true,
	})
	sheet.Register(ParagraphStyle{
		Name:       StyleListBullet,
		IndentLeft: 720,
		Hanging:    360,
		Bullet:     "•",
	})
	return sheet
}
