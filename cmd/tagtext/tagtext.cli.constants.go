package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameTag      = "tag"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagTemplate   = "template"
	FlagName       = "name"
	FlagSet        = "set"
	FlagOutput     = "output"
	FlagVerbose    = "verbose"
	FlagFormat     = "format"
	FlagStrictMode = "strict"
	FlagKind       = "kind"
	FlagAttr       = "attr"
	FlagContent    = "content"
	FlagData       = "data"
	FlagDataFile   = "data-file"
	FlagInput      = "input-format"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagNameShort     = "n"
	FlagSetShort      = "s"
	FlagOutputShort   = "o"
	FlagVerboseShort  = "v"
	FlagFormatShort   = "F"
	FlagKindShort     = "k"
	FlagAttrShort     = "a"
	FlagContentShort  = "c"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagInputShort    = "i"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
	FlagDefaultKind   = "bbcode"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Template document formats
const (
	InputFormatYAML = "yaml"
	InputFormatTOML = "toml"
	ExtensionTOML   = ".toml"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Assignment separator for name=value flags
const (
	PairSeparator = "="
	ListSeparator = ","
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingTemplate   = "template source required"
	ErrMsgMissingTagName    = "tag name required"
	ErrMsgInvalidUsage      = "invalid usage"
	ErrMsgInvalidPair       = "expected name=value"
	ErrMsgInvalidKind       = "invalid tag kind"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgDocumentFailed    = "template document invalid"
	ErrMsgTemplateLookup    = "template lookup failed"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgInvalidInput      = "invalid input format"
	ErrMsgDataFailed        = "variable data invalid"
	ErrMsgDataConflict      = "use either --data or --data-file"
)

// Log message constants
const (
	LogMsgCommandStarted = "command started"
	LogMsgOverrideSet    = "variable override set"
	LogMsgOutputWritten  = "output written"
	LogMsgDataApplied    = "variable data applied"
	LogFieldFormat       = "format"
	LogFieldCommand      = "command"
	LogFieldVariable     = "variable"
	LogFieldBytes        = "bytes"
	LogFieldPath         = "path"
)

// Help text templates
const (
	HelpMainUsage = `go-tagtext - Tag, wrap and template text from the command line

Usage:
    tagtext <command> [options]

Commands:
    render      Render a template document
    validate    Validate a template document's placeholders
    tag         Print content wrapped in a tag
    version     Show version information
    help        Show help for a command

Use "tagtext help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template document

Usage:
    tagtext render [options]

Options:
    -t, --template <file>   Template document (use "-" for stdin)
    -n, --name <name>       Render the named template of a multi-document catalog
    -i, --input-format <f>  Document format: yaml, toml (default: by extension)
    -d, --data <json>       Set variable values from a JSON object
    -f, --data-file <file>  Read the JSON object from a file
    -s, --set <name=value>  Set a variable value (repeatable, applied after data)
    -o, --output <file>     Output file (default: stdout)
    -v, --verbose           Log to stderr

Examples:
    tagtext render -t problem.yaml
    tagtext render -t problem.yaml -s id=427 -s fix="no fix"
    tagtext render -t catalog.yaml -n greeting -s user=Alice
    tagtext render -t problem.toml -d '{"id": 427}'
    cat problem.yaml | tagtext render -t -`

	HelpValidateUsage = `Validate a template document's placeholders

Usage:
    tagtext validate [options]

Options:
    -t, --template <file>   Template document (use "-" for stdin)
    -i, --input-format <f>  Document format: yaml, toml (default: by extension)
    -F, --format <format>   Output format: text, json (default: text)
    --strict                Treat unused variables as errors

Examples:
    tagtext validate -t problem.yaml
    tagtext validate -t problem.yaml --strict -F json`

	HelpTagUsage = `Print content wrapped in a tag

Usage:
    tagtext tag [options]

Options:
    -n, --name <name>       Tag name
    -k, --kind <kind>       Tag kind: bbcode, html, variable (default: bbcode)
    -a, --attr <name=value> Opening tag attribute (repeatable, first wins)
    -c, --content <text>    Content between the tags

Examples:
    tagtext tag -n quote -c hi
    tagtext tag -n a -k html -a href=/home -c Home`

	HelpVersionUsage = `Show version information

Usage:
    tagtext version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    tagtext help [command]

Commands:
    render      Show help for render command
    validate    Show help for validate command
    tag         Show help for tag command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-tagtext version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// Validation output format templates
const (
	ValidationTextSuccess      = "Template is valid"
	ValidationTextIssueHeader  = "Validation issues:"
	ValidationTextIssueFormat  = "  [%s] %s: %s"
	ValidationTextErrorSummary = "%d error(s), %d warning(s)"
	ValidationMsgUndeclared    = "placeholder has no declared variable"
	ValidationMsgUnused        = "declared variable is not used"
)

// Severity names for output
const (
	SeverityNameError   = "ERROR"
	SeverityNameWarning = "WARNING"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)

// CLI metadata
const (
	CLIName = "tagtext"
)
