// Package models defines data structures shared by the dtproton packages.
package models

import (
	"math"
	"strconv"
)

// Value is a typed cell value read from a worksheet.
//
// The set of implementations is closed: Empty, Text, Int, Float, Bool,
// DateTime, DateTimeISO, DurationISO and CellError. Each variant renders its
// own canonical string form, which is what Normalize returns.
type Value interface {
	canonical() string
}

// Empty is a cell without a value.
type Empty struct{}

// Text is a string cell (shared, inline or cached formula string).
type Text string

// Int is an integer numeric cell.
type Int int64

// Float is a non-integer numeric cell.
type Float float64

// Bool is a boolean cell.
type Bool bool

// DateTime is a numeric cell carrying a date format. The value is the raw
// serial day number.
type DateTime float64

// DateTimeISO is a date cell stored as ISO 8601 text.
type DateTimeISO string

// DurationISO is a duration stored as ISO 8601 text.
type DurationISO string

// CellError is a cell holding a formula error such as #DIV/0!.
type CellError ErrorCode

func (Empty) canonical() string { return "" }

func (t Text) canonical() string { return string(t) }

func (i Int) canonical() string { return strconv.FormatInt(int64(i), 10) }

// Whole floats print without a fractional part; everything else uses the
// shortest representation that round-trips.
func (f Float) canonical() string {
	v := float64(f)
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (b Bool) canonical() string { return strconv.FormatBool(bool(b)) }

func (d DateTime) canonical() string { return strconv.FormatFloat(float64(d), 'f', -1, 64) }

func (d DateTimeISO) canonical() string { return string(d) }

func (d DurationISO) canonical() string { return string(d) }

func (e CellError) canonical() string { return ErrorCode(e).String() }

// Normalize returns the canonical string form of v. A nil value is treated
// as Empty.
func Normalize(v Value) string {
	if v == nil {
		return ""
	}
	return v.canonical()
}

// IsEmpty reports whether v holds no value.
func IsEmpty(v Value) bool {
	switch v.(type) {
	case nil, Empty:
		return true
	}
	return false
}

// ErrorCode identifies a spreadsheet formula error.
type ErrorCode int

const (
	ErrDiv0 ErrorCode = iota
	ErrNA
	ErrName
	ErrNull
	ErrNum
	ErrRef
	ErrValue
	ErrGettingData
)

var errorCodeNames = [...]string{
	ErrDiv0:        "Div0",
	ErrNA:          "NA",
	ErrName:        "Name",
	ErrNull:        "Null",
	ErrNum:         "Num",
	ErrRef:         "Ref",
	ErrValue:       "Value",
	ErrGettingData: "GettingData",
}

// String returns the tag name of the error code, e.g. "Div0".
func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(errorCodeNames) {
		return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
	}
	return errorCodeNames[c]
}

var errorLiterals = map[string]ErrorCode{
	"#DIV/0!":       ErrDiv0,
	"#N/A":          ErrNA,
	"#NAME?":        ErrName,
	"#NULL!":        ErrNull,
	"#NUM!":         ErrNum,
	"#REF!":         ErrRef,
	"#VALUE!":       ErrValue,
	"#GETTING_DATA": ErrGettingData,
}

// ParseErrorCode maps an error literal as stored in a worksheet (e.g.
// "#N/A") to its ErrorCode.
func ParseErrorCode(s string) (ErrorCode, bool) {
	c, ok := errorLiterals[s]
	return c, ok
}
