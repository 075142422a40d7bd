package models

import "errors"

var (
	// ErrLoadWorkbook indicates the input workbook could not be opened or parsed
	ErrLoadWorkbook = errors.New("failed to load workbook")
	// ErrNoSheets indicates the workbook contained no sheets at all
	ErrNoSheets = errors.New("workbook contains no sheets")
	// ErrNotInteger indicates a numeric column held non-numeric text
	ErrNotInteger = errors.New("value is not an integer")
	// ErrValidationFailed indicates the validator recorded at least one error
	ErrValidationFailed = errors.New("validation failed")
	// ErrWriteOutput indicates an output document could not be written
	ErrWriteOutput = errors.New("failed to write output")
)
