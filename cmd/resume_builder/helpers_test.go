package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// janeDoeInput answers every prompt of an interactive build
var janeDoeInput = strings.Join([]string{
	"Jane Doe",
	"Email: jane@example.com",
	"",
	"", // no picture
	"Languages",
	"Python, Go",
	"",
	"yes",
	"Engineer",
	"Acme",
	"2020-2022",
	"Built X",
	"",
	"no",
	"no", // education
	"",   // certifications
	"",   // hobbies
	"English",
	"",
	"", // personal details
}, "\n") + "\n"

// resetFlags puts every flag back to its default so commands can run more than
// once in one process
func resetFlags(t *testing.T) {
	t.Helper()
	for _, cmd := range []*cobra.Command{rootCmd, buildCmd, renderCmd, validateCmd} {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}
}

// executeCommand runs the CLI in-process with stdin and returns everything written to stdout
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	t.Setenv("RESUME_OUTPUT", "")
	t.Setenv("RESUME_FONT_FAMILY", "")

	if args == nil {
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// paragraphTexts reads a written document back and returns its body paragraph texts
func paragraphTexts(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	d, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var texts []string
	for _, it := range d.Document.Body.Items {
		if p, ok := it.(*docx.Paragraph); ok {
			texts = append(texts, p.String())
		}
	}
	return texts
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
