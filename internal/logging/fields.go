// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Conversion fields.
	FieldEncoding = "encoding"
	FieldLanguage = "language"
	FieldFormat   = "source_format"
	FieldLines    = "lines"
	FieldMethods  = "methods"
	FieldBookmark = "bookmark"
	FieldSeed     = "seed"
	FieldBackup   = "backup"
	FieldDetected = "detected"

	// Configuration fields.
	FieldFiles = "files"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
