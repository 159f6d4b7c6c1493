package tagtext

import (
	"regexp"
)

// MessageKind selects a message builder template.
type MessageKind int

// MessageKind constants
const (
	MessageKindFunction MessageKind = iota
	MessageKindClass
	MessageKindMethod
)

// Message builder templates and their slots
const (
	MessageTemplateClass    = "[class][method]([param.name][param.type])[return]"
	MessageTemplateFunction = "[function]([param.name][param.type])[return]"
	MessageTemplateMethod   = "[method]([param.name][param.type])[return]"

	messageTypePrefix = ": "
)

var (
	messageSlotClass     = regexp.MustCompile(`(?i)\[class\]`)
	messageSlotFunction  = regexp.MustCompile(`(?i)\[function\]`)
	messageSlotMethod    = regexp.MustCompile(`(?i)\[method\]`)
	messageSlotParamName = regexp.MustCompile(`(?i)\[param\.name\]`)
	messageSlotParamType = regexp.MustCompile(`(?i)\[param\.type\]`)
	messageSlotReturn    = regexp.MustCompile(`(?i)\[return\]`)
)

// String returns the string representation of the message kind
func (k MessageKind) String() string {
	switch k {
	case MessageKindClass:
		return MessageKindNameClass
	case MessageKindMethod:
		return MessageKindNameMethod
	default:
		return MessageKindNameFunction
	}
}

// ParseMessageKind maps class, function or method to its kind.
func ParseMessageKind(name string) (MessageKind, bool) {
	switch name {
	case MessageKindNameClass:
		return MessageKindClass, true
	case MessageKindNameFunction:
		return MessageKindFunction, true
	case MessageKindNameMethod:
		return MessageKindMethod, true
	default:
		return MessageKindFunction, false
	}
}

// MessageBuilderTemplate returns the template of kind.
func MessageBuilderTemplate(kind MessageKind) string {
	switch kind {
	case MessageKindClass:
		return MessageTemplateClass
	case MessageKindMethod:
		return MessageTemplateMethod
	default:
		return MessageTemplateFunction
	}
}

// MessageBuilder fills the slots of a signature template such as
// "[function]([param.name][param.type])[return]". Each call fills the first
// remaining slot of its kind, matched case-insensitively.
type MessageBuilder struct {
	template string
}

// NewMessageBuilder starts from the template of kind.
func NewMessageBuilder(kind MessageKind) *MessageBuilder {
	return &MessageBuilder{template: MessageBuilderTemplate(kind)}
}

// NewMessageBuilderFromTemplate starts from a custom template.
func NewMessageBuilderFromTemplate(template string) *MessageBuilder {
	return &MessageBuilder{template: template}
}

func (b *MessageBuilder) replace(slot *regexp.Regexp, value string) *MessageBuilder {
	loc := slot.FindStringIndex(b.template)
	if loc == nil {
		return b
	}
	b.template = b.template[:loc[0]] + value + b.template[loc[1]:]
	return b
}

// ReplaceClassName fills the [class] slot.
func (b *MessageBuilder) ReplaceClassName(name string) *MessageBuilder {
	return b.replace(messageSlotClass, name)
}

// ReplaceFunctionName fills the [function] slot.
func (b *MessageBuilder) ReplaceFunctionName(name string) *MessageBuilder {
	return b.replace(messageSlotFunction, name)
}

// ReplaceMethodName fills the [method] slot.
func (b *MessageBuilder) ReplaceMethodName(name string) *MessageBuilder {
	return b.replace(messageSlotMethod, name)
}

// ReplaceParam fills [param.name] with name and [param.type] with ": typ",
// or with nothing when typ is empty.
func (b *MessageBuilder) ReplaceParam(name, typ string) *MessageBuilder {
	b.replace(messageSlotParamName, name)
	return b.replace(messageSlotParamType, prefixed(typ))
}

// ReplaceReturn fills [return] with ": returns", or with nothing when returns
// is empty.
func (b *MessageBuilder) ReplaceReturn(returns string) *MessageBuilder {
	return b.replace(messageSlotReturn, prefixed(returns))
}

// Get returns the message built so far.
func (b *MessageBuilder) Get() string {
	return b.template
}

// String returns the message built so far.
func (b *MessageBuilder) String() string {
	return b.template
}

func prefixed(typ string) string {
	if typ == stringEmpty {
		return stringEmpty
	}
	return messageTypePrefix + typ
}

// MessageFunctionBuilder collects a function signature and builds it with a
// function MessageBuilder.
//
//	NewMessageFunctionBuilder().SetName("guardString").SetParam("value", "string").
//	    SetReturn("boolean").Build().Get() // guardString(value: string): boolean
type MessageFunctionBuilder struct {
	builder   *MessageBuilder
	name      string
	paramName string
	paramType string
	returns   string
}

// NewMessageFunctionBuilder creates an empty function builder.
func NewMessageFunctionBuilder() *MessageFunctionBuilder {
	return &MessageFunctionBuilder{builder: NewMessageBuilder(MessageKindFunction)}
}

// SetName sets the function name.
func (f *MessageFunctionBuilder) SetName(name string) *MessageFunctionBuilder {
	f.name = name
	return f
}

// SetParam sets the parameter name and type.
func (f *MessageFunctionBuilder) SetParam(name, typ string) *MessageFunctionBuilder {
	f.paramName = name
	f.paramType = typ
	return f
}

// SetReturn sets the return type.
func (f *MessageFunctionBuilder) SetReturn(returns string) *MessageFunctionBuilder {
	f.returns = returns
	return f
}

// Name returns the function name.
func (f *MessageFunctionBuilder) Name() string { return f.name }

// Param returns the parameter name.
func (f *MessageFunctionBuilder) Param() string { return f.paramName }

// Return returns the return type.
func (f *MessageFunctionBuilder) Return() string { return f.returns }

// Build renders the collected parts from a fresh template, so it may be
// called again after further Set calls.
func (f *MessageFunctionBuilder) Build() *MessageFunctionBuilder {
	f.builder = NewMessageBuilder(MessageKindFunction).
		ReplaceFunctionName(f.name).
		ReplaceParam(f.paramName, f.paramType).
		ReplaceReturn(f.returns)
	return f
}

// Get returns the built signature, or the bare template before Build.
func (f *MessageFunctionBuilder) Get() string {
	return f.builder.Get()
}
