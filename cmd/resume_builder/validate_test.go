package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_ValidBundle(t *testing.T) {
	dir := chdirTemp(t)
	bundlePath := writeTestFile(t, dir, "bundle.json", fullBundleJSON)

	output, err := executeCommand(t, "", "validate", "--bundle", bundlePath)
	require.NoError(t, err)

	assert.Contains(t, output, "is valid")
	assert.Contains(t, output, "Sections with data: 5")
}

func TestValidateCommand_YAMLBundle(t *testing.T) {
	dir := chdirTemp(t)
	bundlePath := writeTestFile(t, dir, "bundle.yml", "personal_info:\n  name: Jane\nhobbies:\n  - Climbing\n")

	output, err := executeCommand(t, "", "validate", "-b", bundlePath)
	require.NoError(t, err)

	assert.Contains(t, output, "Sections with data: 1")
}

func TestValidateCommand_ListsFieldErrors(t *testing.T) {
	dir := chdirTemp(t)
	bundlePath := writeTestFile(t, dir, "bundle.json", `{"hobbies": "climbing", "awards": []}`)

	output, err := executeCommand(t, "", "validate", "-b", bundlePath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema error(s)")
	assert.Contains(t, output, "is invalid")
	assert.Contains(t, output, "- hobbies:")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	chdirTemp(t)

	_, err := executeCommand(t, "", "validate", "-b", "missing.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load bundle")
}

func TestValidateCommand_MissingBundleFlag(t *testing.T) {
	chdirTemp(t)

	_, err := executeCommand(t, "", "validate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}
