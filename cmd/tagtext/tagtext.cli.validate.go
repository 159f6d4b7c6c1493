package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-tagtext"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	templatePath string
	inputFormat  string
	format       string
	strict       bool
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid  bool                    `json:"valid"`
	Issues []validationIssueOutput `json:"issues,omitempty"`
}

type validationIssueOutput struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Variable string `json:"variable"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidUsage, err)
		return ExitCodeUsageError
	}

	source, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	tmpl, err := parseDocument(source, cfg.inputFormat)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgDocumentFailed, err)
		return ExitCodeInputError
	}

	result := tmpl.Validate()
	if cfg.format == OutputFormatJSON {
		return outputValidationJSON(result, cfg.strict, stdout)
	}
	return outputValidationText(result, cfg.strict, stdout)
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &validateConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.inputFormat, FlagInput, "", "")
	fs.StringVar(&cfg.inputFormat, FlagInputShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")
	fs.BoolVar(&cfg.strict, FlagStrictMode, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	format, err := resolveInputFormat(cfg.inputFormat, cfg.templatePath)
	if err != nil {
		return nil, err
	}
	cfg.inputFormat = format

	return cfg, nil
}

func validationIssues(result *tagtext.ValidationResult) []validationIssueOutput {
	issues := make([]validationIssueOutput, 0, len(result.Undeclared)+len(result.Unused))
	for _, name := range result.Undeclared {
		issues = append(issues, validationIssueOutput{
			Severity: SeverityNameError,
			Message:  ValidationMsgUndeclared,
			Variable: name,
		})
	}
	for _, name := range result.Unused {
		issues = append(issues, validationIssueOutput{
			Severity: SeverityNameWarning,
			Message:  ValidationMsgUnused,
			Variable: name,
		})
	}
	return issues
}

func outputValidationText(result *tagtext.ValidationResult, strict bool, stdout io.Writer) int {
	issues := validationIssues(result)

	if len(issues) == 0 {
		fmt.Fprintln(stdout, ValidationTextSuccess)
		return ExitCodeSuccess
	}

	fmt.Fprintln(stdout, ValidationTextIssueHeader)
	for _, issue := range issues {
		fmt.Fprintf(stdout, ValidationTextIssueFormat+FmtNewline, issue.Severity, issue.Message, issue.Variable)
	}
	fmt.Fprintf(stdout, ValidationTextErrorSummary+FmtNewline, len(result.Undeclared), len(result.Unused))

	if result.Err(strict) != nil {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}

func outputValidationJSON(result *tagtext.ValidationResult, strict bool, stdout io.Writer) int {
	output := validationOutput{
		Valid:  result.Err(strict) == nil,
		Issues: validationIssues(result),
	}

	jsonBytes, _ := json.MarshalIndent(output, "", "  ")
	fmt.Fprintln(stdout, string(jsonBytes))

	if !output.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}
