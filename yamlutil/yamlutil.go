// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package yamlutil loads YAML with human-friendly syntax errors.
//
// On malformed input the returned ValidationError shows the offending line
// with up to three lines of context on either side, a line-number gutter,
// and the raw library error, so users can fix project files without
// guessing.
package yamlutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const errorTemplate = `Syntax error near line %d
------------------------------
%s

Raw Error:
------------------------------
%s`

// contextLines is how many lines to show on each side of the error.
const contextLines = 3

// ValidationError is returned for malformed YAML input.
type ValidationError struct {
	// Msg is the contextualized, user-facing message.
	Msg string

	// Err is the underlying yaml library error.
	Err error
}

// Error returns the contextualized message.
func (e *ValidationError) Error() string {
	return e.Msg
}

// Unwrap returns the underlying yaml error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LoadText parses raw YAML into a generic value.
//
// Returns a *ValidationError on malformed input.
func LoadText(raw []byte) (any, error) {
	var out any
	if err := LoadInto(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadInto parses raw YAML into out, which must be a pointer.
//
// Returns a *ValidationError on malformed input.
func LoadInto(raw []byte, out any) error {
	if err := yaml.Unmarshal(raw, out); err != nil {
		return contextualize(raw, err)
	}
	return nil
}

// lineRe extracts the line number yaml.v3 embeds in its error text,
// e.g. "yaml: line 12: mapping values are not allowed in this context".
var lineRe = regexp.MustCompile(`line (\d+):`)

// contextualize builds a ValidationError for a yaml parse failure.
func contextualize(raw []byte, err error) *ValidationError {
	line, ok := errorLine(err)
	if !ok {
		return &ValidationError{Msg: err.Error(), Err: err}
	}

	// yaml.v3 reports 1-based line numbers.
	idx := line - 1
	minLine := idx - contextLines
	if minLine < 0 {
		minLine = 0
	}
	maxLine := idx + contextLines + 1

	excerpt := prefixWithLineNumbers(string(raw), minLine, maxLine)
	msg := fmt.Sprintf(errorTemplate, line, excerpt, err.Error())

	return &ValidationError{Msg: msg, Err: err}
}

// errorLine reports the first line number mentioned by the yaml error.
func errorLine(err error) (int, bool) {
	m := lineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 0, false
	}
	n, convErr := strconv.Atoi(m[1])
	if convErr != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// prefixWithLineNumbers renders lines [start, end) of text with a 1-based
// line-number gutter.
func prefixWithLineNumbers(text string, start, end int) string {
	lines := strings.Split(text, "\n")
	if end > len(lines) {
		end = len(lines)
	}

	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, lineNo(i+1, lines[i]))
	}
	return strings.Join(out, "\n")
}

// lineNo formats one gutter line, left-justifying the number to width 3.
func lineNo(n int, line string) string {
	return fmt.Sprintf("%-3d| %s", n, line)
}
