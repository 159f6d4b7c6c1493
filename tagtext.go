// Package tagtext provides immutable string wrappers for building and
// inspecting delimited text: wraps, tags with attributes, and templates with
// {name} variables.
//
// # Wraps
//
// A Wrap is an opening delimiter, a closing delimiter and content:
//
//	w := tagtext.NewWrap("[", "]", "quote")
//	w.String()              // [quote]
//	w.WrapText("x").Text()  // [x]
//
// A Wrapper is a Wrap whose delimiters are filtered against an allowed
// character pattern, by default brackets, parentheses, angle and curly braces:
//
//	wr, err := tagtext.NewWrapperWithDelimiters("<", ">")
//	wr.UnwrapText("<b>") // b
//
// # Tags
//
// A Tag is a named Wrap with attributes. BBCode, HTML and Variable flavors fix
// the delimiters:
//
//	b := tagtext.NewBBCode("url", tagtext.NewPair("href", "x"))
//	b.OpeningTag()          // [url href="x"]
//	b.Tag("link").String()  // [url href="x"]link[/url]
//
// # Templates
//
// A Template holds raw text with {name} placeholders and its declared
// Variables. A Text is a substitution session over a template:
//
//	text := tagtext.NewText("There is {fix} for the {problem}",
//	    tagtext.NewVariableWithValue("fix", "no fix"),
//	    tagtext.NewVariable("problem"),
//	)
//	text.SetVariable("problem", "crash").GetText(true) // There is no fix for the crash
//
// Templates can be read from YAML or TOML documents and collected in a
// Catalog. Variable values can be taken from JSON data, using each variable
// name as a path.
//
// # Errors
//
// Value operations never fail: a mismatch leaves text unchanged and lookups
// return (value, false). Validation, document decoding and catalog operations
// return errors built with go-cuserr.
package tagtext
