package collect

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
)

// gateAnswer is the only answer that continues an experience or education loop
const gateAnswer = "yes"

// Collector reads resume content line by line from in, writing prompts to out.
// End of input behaves like an empty line, so every loop terminates.
type Collector struct {
	in     *bufio.Reader
	out    io.Writer
	styled bool
	logger *slog.Logger
	eof    bool
}

// Option configures a Collector
type Option func(*Collector)

// WithStyledBanners renders section banners with terminal styling
func WithStyledBanners(styled bool) Option {
	return func(c *Collector) {
		c.styled = styled
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// New creates a Collector reading from in and prompting on out
func New(in io.Reader, out io.Writer, opts ...Option) *Collector {
	c := &Collector{
		in:     bufio.NewReader(in),
		out:    out,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect runs every prompt in order and returns the assembled bundle:
// personal info, profile picture, skills, experience, education, certifications,
// hobbies, languages, personal details.
func (c *Collector) Collect() (*types.Bundle, error) {
	c.println(banner(prompts.Collector("banner-title"), c.styled) + "\n")

	block, err := c.MultilineBlock(prompts.Collector("personal-info"))
	if err != nil {
		return nil, err
	}

	bundle := types.NewBundle()
	bundle.PersonalInfo = ParsePersonalInfo(block)

	if bundle.ProfilePicture, err = c.PicturePath(); err != nil {
		return nil, err
	}

	c.println("\n" + banner(prompts.Collector("banner-skills"), c.styled))
	if bundle.Skills, err = c.Skills(); err != nil {
		return nil, err
	}

	c.println("\n" + banner(prompts.Collector("banner-experience"), c.styled))
	if bundle.Experiences, err = c.Experiences(); err != nil {
		return nil, err
	}

	c.println("\n" + banner(prompts.Collector("banner-education"), c.styled))
	if bundle.Education, err = c.Education(); err != nil {
		return nil, err
	}

	lists := []struct {
		key  string
		dest *[]string
	}{
		{"section-certifications", &bundle.Certifications},
		{"section-hobbies", &bundle.Hobbies},
		{"section-languages", &bundle.Languages},
		{"section-personal-details", &bundle.PersonalDetails},
	}
	for _, l := range lists {
		if *l.dest, err = c.FlatList(prompts.Collector(l.key)); err != nil {
			return nil, err
		}
	}

	c.logger.Debug("collection finished",
		slog.Int("skills", len(bundle.Skills)),
		slog.Int("experiences", len(bundle.Experiences)),
		slog.Int("education", len(bundle.Education)),
		slog.Bool("picture", bundle.HasProfilePicture()),
	)

	return bundle, nil
}

// MultilineBlock prints prompt and reads lines until an empty line, returning them joined by "\n"
func (c *Collector) MultilineBlock(prompt string) (string, error) {
	c.println(prompt)
	lines, err := c.readUntilBlank()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// ParsePersonalInfo turns a personal info block into a PersonalInfo. The first line
// is the name. Every later line containing a colon becomes a lower-cased key and a
// trimmed value; lines without a colon are dropped.
func ParsePersonalInfo(block string) types.PersonalInfo {
	lines := strings.Split(strings.TrimSpace(block), "\n")

	info := types.PersonalInfo{types.NameKey: lines[0]}
	for _, line := range lines[1:] {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		info[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return info
}

// PicturePath asks for an optional profile picture path. An empty answer means no picture.
func (c *Collector) PicturePath() (string, error) {
	answer, err := c.ask("\n" + prompts.Collector("profile-picture"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// Skills asks for skill categories until an empty category is entered
func (c *Collector) Skills() (types.SkillGroups, error) {
	groups := types.SkillGroups{}
	for {
		category, err := c.askTrimmed(prompts.Collector("skill-category"))
		if err != nil {
			return nil, err
		}
		if category == "" {
			return groups, nil
		}

		items, err := c.askTrimmed(prompts.Format(prompts.Collector("skill-items"), map[string]string{
			"Category": category,
		}))
		if err != nil {
			return nil, err
		}
		groups = groups.Set(category, splitSkills(items))
	}
}

func splitSkills(items string) []string {
	parts := strings.Split(items, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Experiences asks for experience entries while the user answers "yes"
func (c *Collector) Experiences() ([]types.Experience, error) {
	experiences := []types.Experience{}
	for {
		more, err := c.gate(prompts.Collector("experience-gate"))
		if err != nil {
			return nil, err
		}
		if !more {
			return experiences, nil
		}

		var exp types.Experience
		if exp.Position, err = c.askTrimmed(prompts.Collector("experience-position")); err != nil {
			return nil, err
		}
		if exp.Company, err = c.askTrimmed(prompts.Collector("experience-company")); err != nil {
			return nil, err
		}
		if exp.Dates, err = c.askTrimmed(prompts.Collector("experience-dates")); err != nil {
			return nil, err
		}

		c.println(prompts.Collector("experience-details"))
		if exp.Details, err = c.readUntilBlank(); err != nil {
			return nil, err
		}

		experiences = append(experiences, exp)
	}
}

// Education asks for education entries while the user answers "yes"
func (c *Collector) Education() ([]types.EducationEntry, error) {
	entries := []types.EducationEntry{}
	for {
		more, err := c.gate(prompts.Collector("education-gate"))
		if err != nil {
			return nil, err
		}
		if !more {
			return entries, nil
		}

		var edu types.EducationEntry
		if edu.Degree, err = c.askTrimmed(prompts.Collector("education-degree")); err != nil {
			return nil, err
		}
		if edu.Institution, err = c.askTrimmed(prompts.Collector("education-institution")); err != nil {
			return nil, err
		}
		if edu.Year, err = c.askTrimmed(prompts.Collector("education-year")); err != nil {
			return nil, err
		}

		entries = append(entries, edu)
	}
}

// FlatList prints the section prompt and collects lines verbatim until an empty line
func (c *Collector) FlatList(sectionName string) ([]string, error) {
	c.println("\n" + prompts.Format(prompts.Collector("flat-list"), map[string]string{
		"Section": sectionName,
	}))
	return c.readUntilBlank()
}

// gate asks a yes/no question. Only "yes" (after trimming, any case) continues.
func (c *Collector) gate(prompt string) (bool, error) {
	answer, err := c.askTrimmed(prompt)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == gateAnswer, nil
}

func (c *Collector) askTrimmed(prompt string) (string, error) {
	answer, err := c.ask(prompt)
	return strings.TrimSpace(answer), err
}

func (c *Collector) ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(c.out, prompt)
	return c.readLine()
}

// readUntilBlank reads lines until an exactly empty line. The result is never nil.
func (c *Collector) readUntilBlank() ([]string, error) {
	lines := []string{}
	for {
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

// readLine returns the next line without its terminator. After end of input it
// keeps returning "".
func (c *Collector) readLine() (string, error) {
	if c.eof {
		return "", nil
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", &ReadError{Message: "failed to read input line", Cause: err}
		}
		c.eof = true
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (c *Collector) println(text string) {
	_, _ = fmt.Fprintln(c.out, text)
}
