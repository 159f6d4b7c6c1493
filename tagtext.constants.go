package tagtext

// Delimiter constants
const (
	BBCodeOpening   = "["
	BBCodeClosing   = "]"
	HTMLOpening     = "<"
	HTMLClosing     = ">"
	VariableOpening = "{"
	VariableClosing = "}"

	// ClosingTagMarker is placed between the opening delimiter and the name of
	// a closing tag.
	ClosingTagMarker = "/"
)

// Wrapper defaults
const (
	// DefaultAllowedChars matches the characters a Wrapper accepts in its
	// delimiters.
	DefaultAllowedChars = `[\[\]\(\)<>{}]`
	DefaultWrapOpening  = BBCodeOpening
	DefaultWrapClosing  = BBCodeClosing
)

// Attribute rendering
const (
	AttributeSeparator = " "
	AttributeAssign    = "="
	AttributeQuote     = `"`
)

// Log message constants
const (
	LogMsgWrapperCreated      = "wrapper created"
	LogMsgDelimiterFiltered   = "delimiter characters filtered out"
	LogMsgTextCreated         = "text created"
	LogMsgTextReset           = "text reset"
	LogMsgTextRendered        = "text rendered"
	LogMsgVariableReplaced    = "variable replaced in working text"
	LogMsgVariableSet         = "variable value set"
	LogMsgVariableUnknown     = "variable not declared"
	LogMsgVariablesFromData   = "variable values read from data"
	LogMsgTemplateReplaced    = "template replaced"
	LogMsgCatalogCreated      = "catalog created"
	LogMsgTemplateRegistered  = "template registered"
	LogMsgCatalogCollision    = "template registration collision - first-come-wins"
	LogMsgCatalogDocumentRead = "catalog document decoded"
	LogMsgCatalogLoaded       = "catalog loaded"
)

// Log field constants
const (
	LogFieldOpening   = "opening"
	LogFieldClosing   = "closing"
	LogFieldFiltered  = "filtered"
	LogFieldAllowed   = "allowed_chars"
	LogFieldVariable  = "variable"
	LogFieldVariables = "variable_count"
	LogFieldLength    = "length"
	LogFieldName      = "name"
	LogFieldCount     = "count"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyOpening      = "opening"
	MetaKeyClosing      = "closing"
	MetaKeyDelimiter    = "delimiter"
	MetaKeyDisallowed   = "disallowed"
	MetaKeyPattern      = "pattern"
	MetaKeyUndeclared   = "undeclared"
	MetaKeyUnused       = "unused"
	MetaKeyTemplateName = "template_name"
)

// Metadata values
const (
	MetaValueOpening = "opening"
	MetaValueClosing = "closing"
	MetaValueJoin    = ","
)

// Kind names
const (
	KindNameUnknown   = "unknown"
	KindNameWrap      = "wrap"
	KindNameWrapped   = "wrapped"
	KindNameAttribute = "attribute"
	KindNameTag       = "tag"
	KindNameTagged    = "tagged"
	KindNameVariable  = "variable"
	KindNameTemplate  = "template"
)

// Flavor names
const (
	FlavorNameBBCode   = "bbcode"
	FlavorNameHTML     = "html"
	FlavorNameVariable = "variable"
)

// Message builder kind names
const (
	MessageKindNameClass    = "class"
	MessageKindNameFunction = "function"
	MessageKindNameMethod   = "method"
)

// Common string values
const (
	stringEmpty   = ""
	yamlTagStr    = "!!str"
	pathSeparator = "."
)
