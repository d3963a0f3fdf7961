package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError is a generation error attached to a span of the user's source
// code. Editors and linters receive it as a diagnostic. The command-line tool
// prints it with the position prepended.
type CodeError struct {
	msg      error
	pos, end token.Pos
	at       token.Position
}

// Unwrap returns the message without position.
func (e *CodeError) Unwrap() error { return e.msg }

func (e *CodeError) Pos() token.Pos { return e.pos }

// End is NoPos unless the error was created with an [Ender].
func (e *CodeError) End() token.Pos { return e.end }

func (e *CodeError) Error() string {
	if !e.at.IsValid() {
		return e.msg.Error()
	}
	return positionString(e.at) + ": " + e.msg.Error()
}

// Errorf creates a [CodeError] at poser, which may be nil. The format accepts
// the verbs of [Sprintf]. Wrapping with %w is not supported because
// diagnostics carry only a message.
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("codefmt: CodeError cannot wrap an error")
		}
	}

	p := printerOf(pkger)
	e := &CodeError{msg: fmt.Errorf(format, p.wrap(args)...)}
	if poser != nil {
		e.pos = poser.Pos()
		e.at = p.position(e.pos)
		if ender, ok := poser.(Ender); ok {
			e.end = ender.End()
		}
	}
	return e
}

// Flatten returns the leaves of errors joined by [errors.Join], depth first.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var leaves []error
	for _, err := range joined.Unwrap() {
		leaves = append(leaves, Flatten(err)...)
	}
	return leaves
}
