package tagtext

import (
	"go.uber.org/zap"
)

// Text is a substitution session over a Template. It keeps a working text
// that starts as the raw template and accumulates substitutions until reset.
//
//	text := tagtext.NewText("There is {fix} for the {problem}",
//	    tagtext.NewVariableWithValue("fix", "no fix"),
//	    tagtext.NewVariable("problem"),
//	)
//	text.ReplaceVariable("problem", "crash").GetText(false) // There is {fix} for the crash
//	text.GetText(true)                                      // There is no fix for the
type Text struct {
	template     *Template
	declarations []*Variable
	working      string
	logger       *zap.Logger
}

// NewText creates a session over a new template built from raw and vars.
func NewText(raw string, vars ...*Variable) *Text {
	t := &Text{logger: zap.NewNop()}
	t.declarations = cloneDeclarations(vars)
	t.template = NewTemplate(raw, vars...)
	t.working = t.template.raw
	return t
}

// NewTextFromTemplate creates a session owning a copy of tmpl.
func NewTextFromTemplate(tmpl *Template) *Text {
	t := &Text{logger: zap.NewNop()}
	t.template = tmpl.Clone()
	t.declarations = cloneDeclarations(t.template.variables.All())
	t.working = t.template.raw
	return t
}

func cloneDeclarations(vars []*Variable) []*Variable {
	out := make([]*Variable, 0, len(vars))
	for _, v := range vars {
		if v != nil {
			out = append(out, v.Clone())
		}
	}
	return out
}

// SetLogger sets the logger. Nil disables logging.
func (t *Text) SetLogger(logger *zap.Logger) *Text {
	if logger == nil {
		logger = zap.NewNop()
	}
	t.logger = logger
	t.logger.Debug(LogMsgTextCreated,
		zap.Int(LogFieldLength, len(t.template.raw)),
		zap.Int(LogFieldVariables, t.template.variables.Len()),
	)
	return t
}

// Template returns the template of the session.
func (t *Text) Template() *Template {
	return t.template
}

// GetReplacement returns the stored value of a declared variable.
func (t *Text) GetReplacement(name string) (string, bool) {
	v, ok := t.template.GetVariable(name)
	if !ok {
		return stringEmpty, false
	}
	return v.Value()
}

// GetText returns the output. With replaceAll the working text is reset and
// every variable's current value is applied in declaration order, so the
// result depends only on the stored values. Without it the working text is
// returned as accumulated by ReplaceVariable.
func (t *Text) GetText(replaceAll bool) string {
	if replaceAll {
		t.working = t.template.Render()
		t.logger.Debug(LogMsgTextRendered, zap.Int(LogFieldLength, len(t.working)))
	}
	return t.working
}

// String renders the fully substituted text without touching the working
// text.
func (t *Text) String() string {
	return t.template.Render()
}

// SetVariable stores value on a declared variable for later GetText(true)
// calls. The working text is not touched. Undeclared names are ignored.
func (t *Text) SetVariable(name, value string) *Text {
	if !t.template.SetVariable(name, value) {
		t.logger.Debug(LogMsgVariableUnknown, zap.String(LogFieldVariable, name))
		return t
	}
	t.logger.Debug(LogMsgVariableSet, zap.String(LogFieldVariable, name))
	return t
}

// ClearVariable removes the stored value of a declared variable.
func (t *Text) ClearVariable(name string) *Text {
	if v, ok := t.template.GetVariable(name); ok {
		v.ClearValue()
	}
	return t
}

// ReplaceVariable substitutes value for the named placeholder in the working
// text only. The value is not stored on the variable. Undeclared names leave
// the working text unchanged.
func (t *Text) ReplaceVariable(name, value string) *Text {
	v, ok := t.template.GetVariable(name)
	if !ok {
		t.logger.Debug(LogMsgVariableUnknown, zap.String(LogFieldVariable, name))
		return t
	}
	t.working = v.ReplaceVariableWith(t.working, value)
	t.logger.Debug(LogMsgVariableReplaced, zap.String(LogFieldVariable, name))
	return t
}

// ResetText restores the working text to the raw template.
func (t *Text) ResetText() *Text {
	t.working = t.template.raw
	t.logger.Debug(LogMsgTextReset)
	return t
}

// SetTemplate replaces the template. Without vars the declarations the
// session was created with are reused; vars given here apply to this template
// only. The working text is reset.
func (t *Text) SetTemplate(raw string, vars ...*Variable) *Text {
	if len(vars) == 0 {
		vars = t.declarations
	}
	t.template = NewTemplate(raw, vars...)
	t.working = t.template.raw
	t.logger.Debug(LogMsgTemplateReplaced,
		zap.Int(LogFieldLength, len(raw)),
		zap.Int(LogFieldVariables, t.template.variables.Len()),
	)
	return t
}
