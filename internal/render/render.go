// Package render turns template text plus a variable mapping into output
// text. The sync engine depends only on the Renderer interface; Engine is
// the text/template implementation with strict-mode undefined-variable
// errors and contained file includes.
package render

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/bianoble/tmpl-sync/internal/sandbox"
)

// Renderer renders template text with a variable mapping. When strict is
// true, a reference to an undefined variable fails the render.
type Renderer interface {
	Render(text string, vars map[string]string, strict bool) (string, error)
}

// RenderError wraps any failure produced while rendering a template.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "rendering template: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Includes deeper than this indicate a cycle.
const maxIncludeDepth = 16

// Engine renders with text/template. Double-curly variable interpolation
// ({{.NAME}}), conditionals, and loops come from the template language; the
// "include" function loads a file resolved against TemplateDir first, then
// ConfigDir, and refuses paths that escape both roots.
type Engine struct {
	TemplateDir string
	ConfigDir   string
}

func (e *Engine) Render(text string, vars map[string]string, strict bool) (string, error) {
	out, err := e.render(text, vars, strict, 0)
	if err != nil {
		return "", &RenderError{Err: err}
	}
	return out, nil
}

func (e *Engine) render(text string, vars map[string]string, strict bool, depth int) (string, error) {
	if depth > maxIncludeDepth {
		return "", fmt.Errorf("include depth exceeds %d, likely an include cycle", maxIncludeDepth)
	}

	// missingkey=zero substitutes the map's zero value (the empty string)
	// for undefined variables; strict mode makes them errors instead.
	opt := "missingkey=zero"
	if strict {
		opt = "missingkey=error"
	}

	tmpl := template.New("template").Option(opt).Funcs(template.FuncMap{
		"include": func(relPath string) (string, error) {
			path, err := e.resolveInclude(relPath)
			if err != nil {
				return "", err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("reading include %s: %w", relPath, err)
			}
			return e.render(string(data), vars, strict, depth+1)
		},
	})

	tmpl, err := tmpl.Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

// resolveInclude searches the permitted roots in order. A path contained in
// a root but missing there falls through to the next root; a path escaping
// every root is rejected outright.
func (e *Engine) resolveInclude(relPath string) (string, error) {
	contained := false
	for _, root := range []string{e.TemplateDir, e.ConfigDir} {
		if root == "" {
			continue
		}
		resolved, err := sandbox.Within(root, relPath)
		if err != nil {
			continue
		}
		contained = true
		if _, statErr := os.Stat(resolved); statErr == nil {
			return resolved, nil
		}
	}
	if !contained {
		return "", fmt.Errorf("include '%s' escapes the permitted directories", relPath)
	}
	return "", fmt.Errorf("include '%s' not found in the template or config directory", relPath)
}
