// Package rendering lays out a resume bundle and writes it as a .docx document.
package rendering

import "fmt"

// PictureError represents a profile picture that could not be embedded.
// The renderer reports it and carries on without the picture.
type PictureError struct {
	Path    string
	Message string
	Cause   error
}

func (e *PictureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("picture error: %s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("picture error: %s (%s)", e.Message, e.Path)
}

func (e *PictureError) Unwrap() error {
	return e.Cause
}

// WriteError represents a failure saving the output document
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error: %s %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("write error: %s %s", e.Message, e.Path)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
