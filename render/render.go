// Package render turns the compose template and a host list into the final
// compose document.
//
// Templates use text/template syntax. The only variable is "hosts", a list
// whose entries expose "name", "latency" and "volume_name":
//
//	{{ range .hosts }}
//	  {{ .name }}:
//	    volumes:
//	      - {{ .volume_name }}:/data/drand
//	{{ end }}
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/latency-testnet/common"
	"github.com/latency-testnet/hosts"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateSyntax   = errors.New("template syntax error")
	ErrTemplateRender   = errors.New("template render error")
	ErrInvalidYAML      = errors.New("rendered output is not valid YAML")
)

// Renderer renders a single template file read from fs.
type Renderer struct {
	fs   afero.Fs
	path string
}

// New returns a Renderer for the template at path. An empty path means
// common.TemplateName in the working directory.
func New(fs afero.Fs, path string) *Renderer {
	if path == "" {
		path = common.TemplateName
	}
	return &Renderer{fs: fs, path: path}
}

// Path returns the template path the renderer loads.
func (r *Renderer) Path() string {
	return r.path
}

// Render loads the template and executes it with nodes bound to "hosts".
// It returns nothing but the error when any step fails.
func (r *Renderer) Render(nodes []hosts.Node) ([]byte, error) {
	src, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, r.path)
		}
		return nil, fmt.Errorf("unable to read template %s: %s", r.path, err)
	}

	tmpl, err := template.New(filepath.Base(r.path)).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateSyntax, err)
	}

	list := make([]map[string]string, 0, len(nodes))
	for _, n := range nodes {
		list = append(list, n.Fields())
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]interface{}{common.HostsVar: list}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateRender, err)
	}
	return buf.Bytes(), nil
}

// Emit writes the rendered document to w in a single write.
func Emit(w io.Writer, out []byte) error {
	_, err := w.Write(out)
	return err
}

// CheckYAML reports whether out parses as a YAML document.
func CheckYAML(out []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(out, &doc); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidYAML, err)
	}
	return nil
}
