package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itsatony/go-tagtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test data constants
const (
	testDocument = `template: "There is {fix} for the {problem} with {id}"
variables:
  - name: fix
    value: no fix
  - name: problem
    value: crucial crush
  - name: id
    value: "427"
`
	testExpectedOutput = "There is no fix for the crucial crush with 427"
	testCatalog        = `name: greeting
template: "Hello, {user}!"
variables:
  - name: user
    value: World
---
name: farewell
template: "Bye, {user}."
variables:
  - name: user
`
	testUndeclaredDocument = `template: "{a} {b}"
variables:
  - name: a
`
	testUnusedDocument = `template: "{a}"
variables:
  - name: a
  - name: b
`
	testInvalidDocument = "template: [unclosed"
	testTOMLDocument    = `template = "Deploy {service} to {env}"

[[variables]]
name = "service"
value = "api"

[[variables]]
name = "env"
`
	testTOMLCatalog = `[[templates]]
name = "greeting"
template = "Hello, {user.name}!"

[[templates.variables]]
name = "user.name"
`
	testData = `{"problem": "tiny bug", "id": 7}`
)

// setupTestData creates test files in a temp directory
func setupTestData(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	files := map[string]string{
		"problem.yaml":    testDocument,
		"catalog.yaml":    testCatalog,
		"undeclared.yaml": testUndeclaredDocument,
		"unused.yaml":     testUnusedDocument,
		"invalid.yaml":    testInvalidDocument,
		"deploy.toml":     testTOMLDocument,
		"catalog.toml":    testTOMLCatalog,
		"data.json":       testData,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte(content), FilePermissions))
	}

	return tmpDir
}

func runCLI(args []string, stdin string) (int, string, string) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run(args, strings.NewReader(stdin), stdout, stderr)
	return code, stdout.String(), stderr.String()
}

// ==================== run() dispatch tests ====================

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	code, stdout, _ := runCLI(nil, "")

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, CLIName)
	assert.Contains(t, stdout, CmdNameRender)
	assert.Contains(t, stdout, CmdNameTag)
}

func TestRun_UnknownCommand(t *testing.T) {
	code, stdout, _ := runCLI([]string{"unknown"}, "")

	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stdout, ErrMsgUnknownCommand)
}

// ==================== Help command tests ====================

func TestHelp(t *testing.T) {
	tests := []struct {
		cmd      string
		expected string
	}{
		{CmdNameRender, HelpRenderUsage},
		{CmdNameValidate, HelpValidateUsage},
		{CmdNameTag, HelpTagUsage},
		{CmdNameVersion, HelpVersionUsage},
		{CmdNameHelp, HelpHelpUsage},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			assert.Equal(t, ExitCodeSuccess, runHelp([]string{tt.cmd}, stdout))
			assert.Contains(t, stdout.String(), tt.expected)
		})
	}
}

// ==================== Render command tests ====================

func TestRender_Document(t *testing.T) {
	dir := setupTestData(t)

	code, stdout, stderr := runCLI([]string{CmdNameRender, "-t", filepath.Join(dir, "problem.yaml")}, "")

	assert.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, testExpectedOutput, stdout)
}

func TestRender_WithOverrides(t *testing.T) {
	dir := setupTestData(t)

	code, stdout, _ := runCLI([]string{
		CmdNameRender, "--template", filepath.Join(dir, "problem.yaml"),
		"-s", "id=1", "--set", "problem=small=bug", "-s", "unknown=x",
	}, "")

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "There is no fix for the small=bug with 1", stdout)
}

func TestRender_FromStdin(t *testing.T) {
	code, stdout, _ := runCLI([]string{CmdNameRender, "-t", InputSourceStdin}, testDocument)

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, testExpectedOutput, stdout)
}

func TestRender_CatalogEntry(t *testing.T) {
	dir := setupTestData(t)
	path := filepath.Join(dir, "catalog.yaml")

	code, stdout, _ := runCLI([]string{CmdNameRender, "-t", path, "-n", "greeting"}, "")
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "Hello, World!", stdout)

	code, stdout, _ = runCLI([]string{CmdNameRender, "-t", path, "--name", "farewell", "-s", "user=Ann"}, "")
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "Bye, Ann.", stdout)

	code, _, stderr := runCLI([]string{CmdNameRender, "-t", path, "-n", "missing"}, "")
	assert.Equal(t, ExitCodeError, code)
	assert.Contains(t, stderr, ErrMsgTemplateLookup)
}

func TestRender_ToFile(t *testing.T) {
	dir := setupTestData(t)
	out := filepath.Join(dir, "out.txt")

	code, stdout, _ := runCLI([]string{CmdNameRender, "-t", filepath.Join(dir, "problem.yaml"), "-o", out}, "")
	require.Equal(t, ExitCodeSuccess, code)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, testExpectedOutput, string(data))
}

func TestRender_Verbose(t *testing.T) {
	dir := setupTestData(t)

	code, _, stderr := runCLI([]string{CmdNameRender, "-t", filepath.Join(dir, "problem.yaml"), "--verbose", "-s", "id=2"}, "")

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stderr, LogMsgCommandStarted)
	assert.Contains(t, stderr, LogMsgOverrideSet)
	assert.Contains(t, stderr, tagtext.LogMsgVariableSet)
}

func TestRender_Errors(t *testing.T) {
	dir := setupTestData(t)

	tests := []struct {
		name   string
		args   []string
		code   int
		errMsg string
	}{
		{name: "missing template", args: []string{}, code: ExitCodeUsageError, errMsg: ErrMsgMissingTemplate},
		{name: "bad set", args: []string{"-t", "x", "-s", "noequals"}, code: ExitCodeUsageError, errMsg: ErrMsgInvalidPair},
		{name: "file not found", args: []string{"-t", filepath.Join(dir, "nope.yaml")}, code: ExitCodeInputError, errMsg: ErrMsgReadFileFailed},
		{name: "invalid document", args: []string{"-t", filepath.Join(dir, "invalid.yaml")}, code: ExitCodeInputError, errMsg: ErrMsgDocumentFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(append([]string{CmdNameRender}, tt.args...), "")
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr, tt.errMsg)
		})
	}
}

func TestRender_Data(t *testing.T) {
	dir := setupTestData(t)
	doc := filepath.Join(dir, "problem.yaml")

	code, stdout, stderr := runCLI([]string{CmdNameRender, "-t", doc, "-d", testData}, "")
	assert.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, "There is no fix for the tiny bug with 7", stdout)

	code, stdout, _ = runCLI([]string{CmdNameRender, "-t", doc, "--data-file", filepath.Join(dir, "data.json"), "-s", "id=8"}, "")
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "There is no fix for the tiny bug with 8", stdout, "--set is applied after data")
}

func TestRender_TOML(t *testing.T) {
	dir := setupTestData(t)

	code, stdout, stderr := runCLI([]string{CmdNameRender, "-t", filepath.Join(dir, "deploy.toml"), "-s", "env=prod"}, "")
	assert.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, "Deploy api to prod", stdout)

	code, stdout, _ = runCLI([]string{CmdNameRender, "-t", InputSourceStdin, "-i", InputFormatTOML, "-s", "env=dev"}, testTOMLDocument)
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "Deploy api to dev", stdout)

	code, stdout, _ = runCLI([]string{
		CmdNameRender, "-t", filepath.Join(dir, "catalog.toml"), "-n", "greeting",
		"-d", `{"user": {"name": "Ann"}}`,
	}, "")
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "Hello, Ann!", stdout)
}

func TestRender_DataErrors(t *testing.T) {
	dir := setupTestData(t)
	doc := filepath.Join(dir, "problem.yaml")

	tests := []struct {
		name   string
		args   []string
		code   int
		errMsg string
	}{
		{name: "both data flags", args: []string{"-t", doc, "-d", "{}", "-f", "x.json"}, code: ExitCodeUsageError, errMsg: ErrMsgDataConflict},
		{name: "invalid json", args: []string{"-t", doc, "-d", "{nope"}, code: ExitCodeInputError, errMsg: ErrMsgDataFailed},
		{name: "missing data file", args: []string{"-t", doc, "-f", filepath.Join(dir, "nope.json")}, code: ExitCodeInputError, errMsg: ErrMsgReadFileFailed},
		{name: "unknown input format", args: []string{"-t", doc, "-i", "ini"}, code: ExitCodeUsageError, errMsg: ErrMsgInvalidInput},
		{name: "yaml read as toml", args: []string{"-t", doc, "-i", InputFormatTOML}, code: ExitCodeInputError, errMsg: ErrMsgDocumentFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(append([]string{CmdNameRender}, tt.args...), "")
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr, tt.errMsg)
		})
	}
}

func TestResolveInputFormat(t *testing.T) {
	tests := []struct {
		flag, path, want string
		wantErr          bool
	}{
		{path: "a.yaml", want: InputFormatYAML},
		{path: "a.TOML", want: InputFormatTOML},
		{path: InputSourceStdin, want: InputFormatYAML},
		{flag: InputFormatTOML, path: "a.yaml", want: InputFormatTOML},
		{flag: "json", path: "a.json", wantErr: true},
	}

	for _, tt := range tests {
		got, err := resolveInputFormat(tt.flag, tt.path)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

// ==================== Validate command tests ====================

func TestValidate_Text(t *testing.T) {
	dir := setupTestData(t)

	tests := []struct {
		name     string
		file     string
		strict   bool
		code     int
		contains string
	}{
		{name: "valid", file: "problem.yaml", code: ExitCodeSuccess, contains: ValidationTextSuccess},
		{name: "undeclared", file: "undeclared.yaml", code: ExitCodeValidationError, contains: ValidationMsgUndeclared},
		{name: "unused warns", file: "unused.yaml", code: ExitCodeSuccess, contains: SeverityNameWarning},
		{name: "unused strict", file: "unused.yaml", strict: true, code: ExitCodeValidationError, contains: ValidationMsgUnused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := []string{CmdNameValidate, "-t", filepath.Join(dir, tt.file)}
			if tt.strict {
				args = append(args, "--"+FlagStrictMode)
			}
			code, stdout, _ := runCLI(args, "")
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stdout, tt.contains)
		})
	}
}

func TestValidate_JSONFormat(t *testing.T) {
	code, stdout, _ := runCLI([]string{CmdNameValidate, "-t", InputSourceStdin, "-F", OutputFormatJSON}, testUndeclaredDocument)

	assert.Equal(t, ExitCodeValidationError, code)

	var output validationOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	assert.False(t, output.Valid)
	require.Len(t, output.Issues, 1)
	assert.Equal(t, SeverityNameError, output.Issues[0].Severity)
	assert.Equal(t, "b", output.Issues[0].Variable)
}

func TestValidate_Errors(t *testing.T) {
	code, _, stderr := runCLI([]string{CmdNameValidate}, "")
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgMissingTemplate)

	code, _, stderr = runCLI([]string{CmdNameValidate, "-t", "-", "--format", "xml"}, "")
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgInvalidFormat)

	code, _, stderr = runCLI([]string{CmdNameValidate, "-t", "-"}, testInvalidDocument)
	assert.Equal(t, ExitCodeInputError, code)
	assert.Contains(t, stderr, ErrMsgDocumentFailed)
}

// ==================== Tag command tests ====================

func TestTag(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "bbcode default", args: []string{"-n", "quote", "-c", "hi"}, expected: "[quote]hi[/quote]"},
		{name: "html with attributes", args: []string{"-n", "a", "-k", "html", "-a", "href=/home", "--attr", "href=/other", "-c", "Home"}, expected: `<a href="/home">Home</a>`},
		{name: "variable", args: []string{"--name", "x", "--kind", "variable"}, expected: "{x}{/x}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := runCLI(append([]string{CmdNameTag}, tt.args...), "")
			assert.Equal(t, ExitCodeSuccess, code)
			assert.Equal(t, tt.expected+FmtNewline, stdout)
		})
	}
}

func TestTag_Errors(t *testing.T) {
	code, _, stderr := runCLI([]string{CmdNameTag}, "")
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgMissingTagName)

	code, _, stderr = runCLI([]string{CmdNameTag, "-n", "b", "-k", "markdown"}, "")
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgInvalidKind)
}

// ==================== Version command tests ====================

func TestVersion_TextFormat(t *testing.T) {
	code, stdout, _ := runCLI([]string{CmdNameVersion}, "")

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, CLIName)
}

func TestVersion_JSONFormat(t *testing.T) {
	code, stdout, _ := runCLI([]string{CmdNameVersion, "-F", OutputFormatJSON}, "")
	require.Equal(t, ExitCodeSuccess, code)

	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.NotEmpty(t, info.GoVersion)
}

func TestVersion_InvalidFormat(t *testing.T) {
	code, _, _ := runCLI([]string{CmdNameVersion, "--format", "xml"}, "")
	assert.Equal(t, ExitCodeUsageError, code)
}

func TestGetVersionInfo_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), VersionsFileName)
	content := "project:\n  version: 1.2.3\ngit:\n  commit: abc\n  branch: main\n"
	require.NoError(t, os.WriteFile(path, []byte(content), FilePermissions))

	info := getVersionInfo([]string{filepath.Join(t.TempDir(), "missing.yaml"), path})

	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc", info.Commit)
	assert.Equal(t, "main", info.Branch)
	assert.Equal(t, VersionUnknown, info.BuildTime)
}

// ==================== Helper tests ====================

func TestPairList(t *testing.T) {
	var pairs pairList

	require.NoError(t, pairs.Set("a=1"))
	require.NoError(t, pairs.Set("b=x=y"))
	require.NoError(t, pairs.Set("c="))
	assert.Error(t, pairs.Set("novalue"))
	assert.Error(t, pairs.Set("=1"))

	assert.Equal(t, "a=1,b=x=y,c=", pairs.String())
	assert.Equal(t, tagtext.NewPair("b", "x=y"), pairs[1])
}

func TestReadInput_FromStdin(t *testing.T) {
	data, err := readInput(InputSourceStdin, strings.NewReader("content"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}

	newLogger(false, buf).Info("hidden")
	assert.Empty(t, buf.String())

	newLogger(true, buf).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
