package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStyles() *StyleSheet {
	return ConfigureStyles(StyleOptions{
		FontFamily:  "Calibri",
		BodySize:    11,
		NameSize:    24,
		HeadingSize: 14,
	})
}

func TestConfigureStyles_RegistersResumeStyles(t *testing.T) {
	sheet := testStyles()

	assert.Equal(t, []string{StyleNormal, StyleName, StyleHeading1, StyleListBullet}, sheet.Names())

	name := sheet.Resolve(StyleName)
	assert.Equal(t, "Calibri", name.FontFamily)
	assert.Equal(t, 24.0, name.SizePt)
	assert.True(t, name.Bold)
}

func TestStyleSheetRegister_IsIdempotent(t *testing.T) {
	sheet := testStyles()

	added := sheet.Register(ParagraphStyle{Name: StyleName, SizePt: 40})

	assert.False(t, added)
	assert.Equal(t, 24.0, sheet.Resolve(StyleName).SizePt)
	assert.Len(t, sheet.Names(), 4)
}

func TestStyleSheetRegister_NewStyle(t *testing.T) {
	sheet := testStyles()

	assert.False(t, sheet.Has("Quote"))
	assert.True(t, sheet.Register(ParagraphStyle{Name: "Quote"}))
	assert.True(t, sheet.Has("Quote"))
}

func TestStyleSheetResolve_InheritsFromNormal(t *testing.T) {
	sheet := testStyles()

	bullet := sheet.Resolve(StyleListBullet)
	assert.Equal(t, "Calibri", bullet.FontFamily)
	assert.Equal(t, 11.0, bullet.SizePt)
	assert.Equal(t, "•", bullet.Bullet)

	heading := sheet.Resolve(StyleHeading1)
	assert.Equal(t, "Calibri", heading.FontFamily)
	assert.Equal(t, 14.0, heading.SizePt)
}

func TestStyleSheetResolve_UnknownFallsBackToNormal(t *testing.T) {
	sheet := testStyles()

	style := sheet.Resolve("Missing")
	assert.Equal(t, StyleNormal, style.Name)
	assert.Equal(t, 11.0, style.SizePt)
}

func TestStyleSheetNames_ReturnsCopy(t *testing.T) {
	sheet := testStyles()

	names := sheet.Names()
	names[0] = "changed"

	assert.Equal(t, StyleNormal, sheet.Names()[0])
}
