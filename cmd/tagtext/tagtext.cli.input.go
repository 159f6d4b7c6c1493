package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/itsatony/go-tagtext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// resolveInputFormat picks the document format from the flag, falling back
// to the file extension. Stdin defaults to YAML.
func resolveInputFormat(format, path string) (string, error) {
	switch format {
	case InputFormatYAML, InputFormatTOML:
		return format, nil
	case "":
		if strings.EqualFold(filepath.Ext(path), ExtensionTOML) {
			return InputFormatTOML, nil
		}
		return InputFormatYAML, nil
	default:
		return "", errors.New(ErrMsgInvalidInput)
	}
}

// parseDocument decodes a single template document in the given format.
func parseDocument(source []byte, format string) (*tagtext.Template, error) {
	if format == InputFormatTOML {
		return tagtext.ParseDocumentTOML(source)
	}
	return tagtext.ParseDocument(source)
}

// loadCatalog decodes a multi-template catalog in the given format.
func loadCatalog(source []byte, format string, logger *zap.Logger) (*tagtext.Catalog, error) {
	if format == InputFormatTOML {
		return tagtext.LoadCatalogTOML(source, logger)
	}
	return tagtext.LoadCatalog(source, logger)
}

// pairList collects repeated name=value flags in order.
type pairList []tagtext.Pair

func (p *pairList) String() string {
	parts := make([]string, 0, len(*p))
	for _, pair := range *p {
		parts = append(parts, pair.Name()+PairSeparator+pair.Value())
	}
	return strings.Join(parts, ListSeparator)
}

func (p *pairList) Set(value string) error {
	name, val, ok := strings.Cut(value, PairSeparator)
	if !ok || name == "" {
		return errors.New(ErrMsgInvalidPair)
	}
	*p = append(*p, tagtext.NewPair(name, val))
	return nil
}

// newLogger returns a console logger on w when verbose, a no-op one otherwise.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core)
}
