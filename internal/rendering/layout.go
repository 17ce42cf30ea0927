package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section headings in the order they appear in the document
const (
	SectionSkills          = "Skills"
	SectionExperience      = "Experience"
	SectionEducation       = "Education"
	SectionCertifications  = "Certifications"
	SectionHobbies         = "Hobbies and Interests"
	SectionLanguages       = "Languages"
	SectionPersonalDetails = "Personal Information"
)

// BlockKind distinguishes how a block is written to the document
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockBullet
	BlockSpacer
)

// Run is a span of text sharing one formatting
type Run struct {
	Text string
	Bold bool
}

// Block is one body paragraph
type Block struct {
	Kind  BlockKind
	Style string
	Runs  []Run
}

// Text returns the concatenated run texts
func (b Block) Text() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Header is the two-column block at the top of the document
type Header struct {
	PicturePath string
	Name        string
	Contact     string
}

// Document is the format-neutral layout of a resume
type Document struct {
	Header Header
	Blocks []Block
}

// Headings returns the section headings in document order
func (d *Document) Headings() []string {
	var headings []string
	for _, b := range d.Blocks {
		if b.Kind == BlockHeading {
			headings = append(headings, b.Text())
		}
	}
	return headings
}

// Section returns the blocks between the named heading and the next heading,
// or nil when the section is absent
func (d *Document) Section(title string) []Block {
	for i, b := range d.Blocks {
		if b.Kind != BlockHeading || b.Text() != title {
			continue
		}
		end := i + 1
		for end < len(d.Blocks) && d.Blocks[end].Kind != BlockHeading {
			end++
		}
		return d.Blocks[i+1 : end]
	}
	return nil
}

// sectionWriter appends one section's blocks; it returns nothing for empty data
type sectionWriter func(b *types.Bundle) []Block

var sectionOrder = []struct {
	title string
	write sectionWriter
}{
	{SectionSkills, skillsSection},
	{SectionExperience, experienceSection},
	{SectionEducation, educationSection},
	{SectionCertifications, func(b *types.Bundle) []Block { return bulletBlocks(b.Certifications) }},
	{SectionHobbies, func(b *types.Bundle) []Block { return bulletBlocks(b.Hobbies) }},
	{SectionLanguages, languagesSection},
	{SectionPersonalDetails, func(b *types.Bundle) []Block { return bulletBlocks(b.PersonalDetails) }},
}

// Layout maps a bundle onto the fixed resume layout. Sections with no data are
// left out entirely. The result depends only on the bundle.
func Layout(bundle *types.Bundle) *Document {
	doc := &Document{
		Header: Header{
			PicturePath: bundle.ProfilePicture,
			Name:        bundle.PersonalInfo.Name(),
			Contact:     ContactLine(bundle.PersonalInfo),
		},
		Blocks: []Block{
			{Kind: BlockSpacer, Style: StyleNormal, Runs: []Run{{Text: "\n"}}},
			{Kind: BlockSpacer, Style: StyleNormal, Runs: []Run{{Text: ""}}},
		},
	}

	for _, s := range sectionOrder {
		blocks := s.write(bundle)
		if len(blocks) == 0 {
			continue
		}
		doc.Blocks = append(doc.Blocks, Block{
			Kind:  BlockHeading,
			Style: StyleHeading1,
			Runs:  []Run{{Text: s.title}},
		})
		doc.Blocks = append(doc.Blocks, blocks...)
	}

	return doc
}

func skillsSection(b *types.Bundle) []Block {
	blocks := make([]Block, 0, len(b.Skills))
	for _, group := range b.Skills {
		blocks = append(blocks, paragraph(
			Run{Text: group.Category + ": ", Bold: true},
			Run{Text: strings.Join(group.Skills, ", ")},
		))
	}
	return blocks
}

func experienceSection(b *types.Bundle) []Block {
	var blocks []Block
	for _, exp := range b.Experiences {
		blocks = append(blocks, paragraph(
			Run{Text: exp.Position + ", ", Bold: true},
			Run{Text: fmt.Sprintf("%s (%s)", exp.Company, exp.Dates)},
		))
		for _, detail := range exp.Details {
			blocks = append(blocks, bullet(strings.TrimSpace(detail)))
		}
	}
	return blocks
}

func educationSection(b *types.Bundle) []Block {
	blocks := make([]Block, 0, len(b.Education))
	for _, edu := range b.Education {
		blocks = append(blocks, paragraph(
			Run{Text: edu.Degree + ", ", Bold: true},
			Run{Text: fmt.Sprintf("%s (%s)", edu.Institution, edu.Year)},
		))
	}
	return blocks
}

func languagesSection(b *types.Bundle) []Block {
	if len(b.Languages) == 0 {
		return nil
	}
	return []Block{paragraph(Run{Text: strings.Join(b.Languages, ", ")})}
}

func bulletBlocks(items []string) []Block {
	blocks := make([]Block, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, bullet(item))
	}
	return blocks
}

func paragraph(runs ...Run) Block {
	return Block{Kind: BlockParagraph, Style: StyleNormal, Runs: runs}
}

func bullet(text string) Block {
	return Block{Kind: BlockBullet, Style: StyleListBullet, Runs: []Run{{Text: text}}}
}
