package printer

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/stackb/phpgen/pkg/namespace"
)

var blankLinesRe = regexp.MustCompile(`\n{3,}`)

// Printer renders namespaces.  It only reads through namespace.View.
type Printer struct {
	indent string
}

// Option configures a Printer.
type Option func(*Printer)

// WithIndent sets the indentation unit (default: a tab).
func WithIndent(indent string) Option {
	return func(p *Printer) {
		p.indent = indent
	}
}

// New constructs a Printer.
func New(options ...Option) *Printer {
	p := &Printer{indent: "\t"}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// PrintFile writes a complete file holding the given namespaces.
func (p *Printer) PrintFile(w io.Writer, namespaces []namespace.View) error {
	var buf bytes.Buffer
	buf.WriteString("<?php\n\ndeclare(strict_types=1);\n\n")
	for _, ns := range namespaces {
		buf.WriteString(p.namespace(ns))
		buf.WriteString("\n")
	}
	out := blankLinesRe.ReplaceAll(buf.Bytes(), []byte("\n\n"))
	out = append(bytes.TrimRight(out, "\n"), '\n')
	_, err := w.Write(out)
	return err
}

// PrintNamespace writes a single namespace.
func (p *Printer) PrintNamespace(w io.Writer, ns namespace.View) error {
	_, err := io.WriteString(w, p.namespace(ns))
	return err
}

// NamespaceString renders a single namespace to a string.
func (p *Printer) NamespaceString(ns namespace.View) (string, error) {
	var buf strings.Builder
	if err := p.PrintNamespace(&buf, ns); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (p *Printer) namespace(ns namespace.View) string {
	var body strings.Builder
	for _, block := range []struct {
		kind    namespace.Kind
		keyword string
	}{
		{namespace.KindType, "use "},
		{namespace.KindFunction, "use function "},
		{namespace.KindConstant, "use const "},
	} {
		imports := ns.Imports(block.kind)
		for _, imp := range imports {
			body.WriteString(block.keyword + imp.String() + ";\n")
		}
		if len(imports) > 0 {
			body.WriteString("\n")
		}
	}

	var decls []string
	for _, t := range ns.Types() {
		decls = append(decls, p.typeDecl(ns, t))
	}
	for _, f := range ns.Functions() {
		decls = append(decls, p.functionDecl(ns, f))
	}
	body.WriteString(strings.Join(decls, "\n"))

	name := ns.Name()
	if ns.HasBracketedSyntax() {
		header := "namespace {\n"
		if name != "" {
			header = "namespace " + name + " {\n"
		}
		return header + p.indentLines(strings.TrimRight(body.String(), "\n")) + "\n}\n"
	}
	if name == "" {
		return body.String()
	}
	return "namespace " + name + ";\n\n" + body.String()
}

func (p *Printer) typeDecl(ns namespace.View, t *namespace.TypeDecl) string {
	var buf strings.Builder
	buf.WriteString(docComment(t.Comment))
	buf.WriteString(string(t.Kind) + " " + t.Name())
	if len(t.Extends) > 0 {
		buf.WriteString(" extends " + p.nameList(ns, t.Extends))
	}
	if len(t.Implements) > 0 {
		buf.WriteString(" implements " + p.nameList(ns, t.Implements))
	}
	buf.WriteString("\n{\n}\n")
	return buf.String()
}

func (p *Printer) functionDecl(ns namespace.View, f *namespace.FunctionDecl) string {
	params := make([]string, len(f.Params))
	for i, param := range f.Params {
		if param.Type == "" {
			params[i] = "$" + param.Name
			continue
		}
		params[i] = ns.ShortenType(param.Type, namespace.KindType) + " $" + param.Name
	}

	var buf strings.Builder
	buf.WriteString(docComment(f.Comment))
	fmt.Fprintf(&buf, "function %s(%s)", f.Name(), strings.Join(params, ", "))
	if f.ReturnType != "" {
		buf.WriteString(": " + ns.ShortenType(f.ReturnType, namespace.KindType))
	}
	buf.WriteString("\n{\n}\n")
	return buf.String()
}

func (p *Printer) nameList(ns namespace.View, names []string) string {
	short := make([]string, len(names))
	for i, name := range names {
		short[i] = ns.ShortenName(name, namespace.KindType)
	}
	return strings.Join(short, ", ")
}

func (p *Printer) indentLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = p.indent + line
		}
	}
	return strings.Join(lines, "\n")
}

func docComment(comment string) string {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return ""
	}
	var buf strings.Builder
	buf.WriteString("/**\n")
	comment = strings.ReplaceAll(comment, "*/", "* /")
	for _, line := range strings.Split(comment, "\n") {
		buf.WriteString(strings.TrimRight(" * "+line, " ") + "\n")
	}
	buf.WriteString(" */\n")
	return buf.String()
}
