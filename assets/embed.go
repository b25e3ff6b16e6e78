// Package assets embeds the default word lists shipped with the binary.
package assets

import (
	"embed"
	"io"
)

// Embedded list names.
const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// Answers opens the embedded answer list.
func Answers() (io.ReadCloser, error) { return FS.Open(AnswersFile) }

// Allowed opens the embedded guess-only list.
func Allowed() (io.ReadCloser, error) { return FS.Open(AllowedFile) }
