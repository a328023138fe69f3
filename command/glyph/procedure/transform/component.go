package transform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lithammer/dedent"
)

// Component emits a React component wrapping the source SVG. The root
// element's width and height give way to a size prop; everything else is
// carried over with attribute names converted to JSX form.
type Component struct{}

var (
	svgOpenPattern  = regexp.MustCompile(`(?is)<svg\b([^>]*?)(/?)>`)
	svgClosePattern = regexp.MustCompile(`(?i)</svg\s*>`)
	sizeAttrPattern = regexp.MustCompile(`(?i)(?:^|\s)(width|height)\s*=\s*"[^"]*"`)
	attrNamePattern = regexp.MustCompile(`\b([a-z][a-z0-9]*(?:-[a-z][a-z0-9]*)+)=`)
	classPattern    = regexp.MustCompile(`\bclass=`)
)

func (r *Component) Transform(content string, options *Options, name string) (string, error) {
	open := svgOpenPattern.FindStringSubmatchIndex(content)
	if open == nil {
		return "", fmt.Errorf("missing <svg> root element in source content")
	}

	// * collect root attributes, dropping fixed dimensions
	attributes := content[open[2]:open[3]]
	attributes = sizeAttrPattern.ReplaceAllString(attributes, "")
	attributes = strings.TrimSpace(attributes)
	if attributes != "" {
		attributes = " " + attributes
	}

	// * collect inner markup unless the root is self-closing
	inner := ""
	if content[open[4]:open[5]] != "/" {
		closing := svgClosePattern.FindStringIndex(content[open[1]:])
		if closing == nil {
			return "", fmt.Errorf("missing </svg> closing tag in source content")
		}
		inner = strings.TrimSpace(content[open[1] : open[1]+closing[0]])
	}

	attributes = jsxAttributes(attributes)
	inner = jsxAttributes(inner)

	var builder strings.Builder
	if options.JsxRuntime == JsxRuntimeClassic {
		builder.WriteString("import * as React from \"react\";\n")
	}

	if options.Typescript {
		builder.WriteString(fmt.Sprintf(typescriptHeader, name))
		builder.WriteString(fmt.Sprintf(typescriptSignature, name))
	} else {
		builder.WriteString(fmt.Sprintf(javascriptSignature, name))
	}

	if inner == "" {
		builder.WriteString(fmt.Sprintf(emptyBody, attributes))
	} else {
		builder.WriteString(fmt.Sprintf(markupBody, attributes, indent(inner, "      ")))
	}
	builder.WriteString("}\n")

	return builder.String(), nil
}

var typescriptHeader = dedent.Dedent(`
	import type { SVGProps } from "react";

	export interface %[1]sProps extends SVGProps<SVGSVGElement> {
	  size?: number | string;
	}
`)[1:]

var typescriptSignature = dedent.Dedent(`

	export function %[1]s({ size = 24, ...props }: %[1]sProps) {
`)[1:]

var javascriptSignature = dedent.Dedent(`
	export function %[1]s({ size = 24, ...props }) {
`)[1:]

var emptyBody = dedent.Dedent(`
	  return <svg%[1]s width={size} height={size} {...props} />;
`)[1:]

var markupBody = dedent.Dedent(`
	  return (
	    <svg%[1]s width={size} height={size} {...props}>
	%[2]s
	    </svg>
	  );
`)[1:]

// jsxAttributes rewrites dashed attribute names (stroke-width) to their
// JSX camel case form (strokeWidth) and class to className. Attribute
// values and element text are left untouched.
func jsxAttributes(markup string) string {
	markup = classPattern.ReplaceAllString(markup, "className=")
	return attrNamePattern.ReplaceAllStringFunc(markup, func(match string) string {
		name := strings.TrimSuffix(match, "=")
		parts := strings.Split(name, "-")
		for i := 1; i < len(parts); i++ {
			if parts[i] != "" {
				parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
			}
		}
		return strings.Join(parts, "") + "="
	})
}

func indent(markup string, prefix string) string {
	lines := strings.Split(markup, "\n")
	for i, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines[i] = prefix + trimmed
		} else {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
