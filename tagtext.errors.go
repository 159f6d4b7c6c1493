package tagtext

import (
	"strings"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Delimiter errors
	ErrMsgDisallowedDelimiter = "delimiter contains characters outside the allowed set"
	ErrMsgEmptyDelimiter      = "delimiter cannot be empty"
	ErrMsgInvalidPattern      = "invalid allowed characters pattern"

	// Template validation errors
	ErrMsgUndeclaredPlaceholder = "template contains undeclared placeholders"
	ErrMsgUnusedVariable        = "declared variables do not appear in template"

	// Document errors
	ErrMsgDocumentDecode   = "template document decoding failed"
	ErrMsgDocumentEmpty    = "template document has no template"
	ErrMsgDocumentNoName   = "catalog document has no name"
	ErrMsgEmptyVariableKey = "variable name cannot be empty"
	ErrMsgInvalidData      = "variable data is not valid JSON"

	// Catalog errors
	ErrMsgTemplateNotFound = "template not found"
	ErrMsgTemplateExists   = "template already registered"
	ErrMsgNilTemplate      = "template cannot be nil"
)

// Error code constants for categorization
const (
	ErrCodeValidation = "TAGTEXT_VALIDATION"
	ErrCodeDocument   = "TAGTEXT_DOCUMENT"
	ErrCodeCatalog    = "TAGTEXT_CATALOG"
)

// NewDisallowedDelimiterError reports a delimiter holding characters the
// allow-list rejects.
func NewDisallowedDelimiterError(which, delimiter, disallowed, pattern string) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgDisallowedDelimiter).
		WithMetadata(MetaKeyDelimiter, which).
		WithMetadata(which, delimiter).
		WithMetadata(MetaKeyDisallowed, disallowed).
		WithMetadata(MetaKeyPattern, pattern)
}

// NewEmptyDelimiterError reports a missing opening or closing delimiter.
func NewEmptyDelimiterError(which string) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgEmptyDelimiter).
		WithMetadata(MetaKeyDelimiter, which)
}

// NewInvalidPatternError wraps a regular expression compile failure.
func NewInvalidPatternError(pattern string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeValidation, ErrMsgInvalidPattern).
		WithMetadata(MetaKeyPattern, pattern)
}

// NewUndeclaredPlaceholderError reports placeholders with no matching variable.
func NewUndeclaredPlaceholderError(names []string) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgUndeclaredPlaceholder).
		WithMetadata(MetaKeyUndeclared, strings.Join(names, MetaValueJoin))
}

// NewUnusedVariableError reports declared variables missing from the template.
func NewUnusedVariableError(names []string) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgUnusedVariable).
		WithMetadata(MetaKeyUnused, strings.Join(names, MetaValueJoin))
}

// NewDocumentError creates a document error, wrapping cause when given.
func NewDocumentError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeDocument, msg)
	}
	return cuserr.NewValidationError(ErrCodeDocument, msg)
}

// NewTemplateNotFoundError creates a catalog lookup miss error.
func NewTemplateNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyTemplateName, ErrMsgTemplateNotFound).
		WithMetadata(MetaKeyTemplateName, name)
}

// NewTemplateExistsError creates a catalog collision error.
func NewTemplateExistsError(name string) error {
	return cuserr.NewValidationError(ErrCodeCatalog, ErrMsgTemplateExists).
		WithMetadata(MetaKeyTemplateName, name)
}

// NewInvalidDataError reports variable data that is not valid JSON.
func NewInvalidDataError() error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgInvalidData)
}
