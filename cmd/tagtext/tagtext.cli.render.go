package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/itsatony/go-tagtext"
	"go.uber.org/zap"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	name         string
	inputFormat  string
	data         string
	dataFile     string
	sets         pairList
	outputPath   string
	verbose      bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidUsage, err)
		return ExitCodeUsageError
	}

	logger := newLogger(cfg.verbose, stderr)
	defer func() { _ = logger.Sync() }()
	logger.Debug(LogMsgCommandStarted,
		zap.String(LogFieldCommand, CmdNameRender),
		zap.String(LogFieldFormat, cfg.inputFormat),
	)

	source, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	text, code := loadText(source, cfg.inputFormat, cfg.name, logger, stderr)
	if text == nil {
		return code
	}

	data, err := readData(cfg)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}
	if data != nil {
		if _, err := text.SetVariablesFromJSON(data); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgDataFailed, err)
			return ExitCodeInputError
		}
		logger.Debug(LogMsgDataApplied, zap.Int(LogFieldBytes, len(data)))
	}

	for _, set := range cfg.sets {
		logger.Debug(LogMsgOverrideSet, zap.String(LogFieldVariable, set.Name()))
		text.SetVariable(set.Name(), set.Value())
	}

	result := text.GetText(true)
	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}
	logger.Debug(LogMsgOutputWritten,
		zap.String(LogFieldPath, cfg.outputPath),
		zap.Int(LogFieldBytes, len(result)),
	)

	return ExitCodeSuccess
}

// readData returns the JSON variable data named by the flags, or nil.
func readData(cfg *renderConfig) ([]byte, error) {
	if cfg.dataFile != "" {
		return os.ReadFile(cfg.dataFile)
	}
	if cfg.data != "" {
		return []byte(cfg.data), nil
	}
	return nil, nil
}

// loadText builds a session from a single document, or from the named entry
// of a multi-document catalog when name is set.
func loadText(source []byte, format, name string, logger *zap.Logger, stderr io.Writer) (*tagtext.Text, int) {
	if name == "" {
		tmpl, err := parseDocument(source, format)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgDocumentFailed, err)
			return nil, ExitCodeInputError
		}
		return tagtext.NewTextFromTemplate(tmpl).SetLogger(logger), ExitCodeSuccess
	}

	catalog, err := loadCatalog(source, format, logger)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgDocumentFailed, err)
		return nil, ExitCodeInputError
	}
	text, err := catalog.NewText(name)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgTemplateLookup, err)
		return nil, ExitCodeError
	}
	return text, ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.name, FlagName, "", "")
	fs.StringVar(&cfg.name, FlagNameShort, "", "")
	fs.StringVar(&cfg.inputFormat, FlagInput, "", "")
	fs.StringVar(&cfg.inputFormat, FlagInputShort, "", "")
	fs.StringVar(&cfg.data, FlagData, "", "")
	fs.StringVar(&cfg.data, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFile, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFile, FlagDataFileShort, "", "")
	fs.Var(&cfg.sets, FlagSet, "")
	fs.Var(&cfg.sets, FlagSetShort, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	if cfg.data != "" && cfg.dataFile != "" {
		return nil, errors.New(ErrMsgDataConflict)
	}

	format, err := resolveInputFormat(cfg.inputFormat, cfg.templatePath)
	if err != nil {
		return nil, err
	}
	cfg.inputFormat = format

	return cfg, nil
}
