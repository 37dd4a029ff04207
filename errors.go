package main

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrInit = errors.New("initialization failed")
	ErrLoad = errors.New("resource load failed")
)

// callError records which library call failed. Its message is the
// diagnostic line printed before the program exits.
type callError struct {
	kind error
	call string
	err  error
}

func (e *callError) Error() string {
	return fmt.Sprintf("%s Error: %v", e.call, e.err)
}

func (e *callError) Unwrap() []error {
	return []error{e.kind, e.err}
}

func initError(call string, err error) error {
	return &callError{kind: ErrInit, call: call, err: err}
}

func loadError(call string, err error) error {
	return &callError{kind: ErrLoad, call: call, err: err}
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, err.Error())
}
