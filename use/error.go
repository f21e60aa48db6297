package use

import (
	"fmt"
	"go/ast"
	"go/token"
)

func Err(message string) *Error {
	return &Error{message: message}
}

func FileCommentErr(message string, file *ast.File, comment *ast.Comment) *Error {
	return &Error{message: message, comment: comment, file: file}
}

// WithPosition attaches a resolved source position of the comment.
func (e *Error) WithPosition(fileSet *token.FileSet) *Error {
	if e != nil && fileSet != nil && e.comment != nil {
		e.position = fileSet.Position(e.comment.Pos())
	}
	return e
}

// Wrap keeps the cause available to errors.Is and errors.As.
func (e *Error) Wrap(cause error) *Error {
	e.cause = cause
	return e
}

type Error struct {
	message string
	cause   error

	file     *ast.File
	comment  *ast.Comment
	position token.Position
}

func (e *Error) Error() string {
	m := e.message
	if e.cause != nil {
		m += ": " + e.cause.Error()
	}
	if e.position.IsValid() {
		m += fmt.Sprintf(" (%s)", e.position)
	} else {
		if e.file != nil {
			m += fmt.Sprintf(" file: %s", e.file.Name.String())
		}
		if e.comment != nil {
			m += fmt.Sprintf(" pos: %d", e.comment.Pos())
		}
	}
	return m
}

func (e *Error) Unwrap() error {
	return e.cause
}
