package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError is an error tied to a place in the user's source code.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Error implements the error interface. A valid position renders as a
// file:line:column prefix before the message.
func (e CodeError) Error() string {
	if e.err == nil {
		return ""
	}
	if !e.pos.IsValid() {
		return e.err.Error()
	}
	return FormatPosition(e.fset.Position(e.pos)) + ": " + e.err.Error()
}

// Unwrap returns the underlying error.
func (e CodeError) Unwrap() error { return e.err }

// Pos returns the position where the error occurred. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns the end position of the error. It may be invalid.
func (e CodeError) End() token.Pos { return e.end }

// Errorf formats an error message tied to poser's position. With a nil poser
// the error carries no position.
//
// Errors must not be passed as args. A CodeError marks exactly one place in
// the code, so wrapping another error would smuggle in a second one. Wrap a
// CodeError from outside instead.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	pos, end := span(poser)
	err := fmt.Errorf(format, f.wrapArgs(args)...)
	return &CodeError{err, pos, end, f.Fset}
}

func span(poser Poser) (pos, end token.Pos) {
	if poser == nil {
		return token.NoPos, token.NoPos
	}
	pos = poser.Pos()
	if ender, ok := poser.(Ender); ok {
		end = ender.End()
	}
	return pos, end
}
