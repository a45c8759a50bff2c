// Package templates holds the text/template sources of generated files.
package templates

import (
	"embed"
	"fmt"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Header is the resource header template. It defines the "header", "entry"
// and "footer" blocks so entries can be streamed one at a time.
const Header = "resources.hpp.tmpl"

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Parse loads the specified template file and parses it with funcMap.
func Parse(name string, funcMap template.FuncMap) (*template.Template, error) {
	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	if funcMap == nil {
		funcMap = template.FuncMap{}
	}
	t, err := template.New(name).Funcs(funcMap).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return t, nil
}
