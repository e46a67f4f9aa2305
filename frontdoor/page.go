// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package frontdoor

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/pyplayground/frontdoor/logging"
	"github.com/pyplayground/frontdoor/xhttp"
	"go.uber.org/zap"
)

const (
	DefaultTitle      = "Python Code Runner"
	DefaultPyodideURL = "https://cdn.jsdelivr.net/pyodide/v0.24.1/full/pyodide.js"

	indexTemplateName = "index.html"
)

//go:embed templates/index.html
var indexTemplate string

// DefaultPackages returns the Pyodide packages preloaded by the page when none are configured.
func DefaultPackages() []string {
	return []string{"numpy", "matplotlib", "pandas"}
}

// PageOptions configures the index page.
type PageOptions struct {
	// TemplateFile is an html/template on disk that replaces the built-in page.  Optional.
	TemplateFile string

	// Title is the document title.  Defaults to DefaultTitle.
	Title string

	// PyodideURL is the location of the pyodide.js loader.  Defaults to DefaultPyodideURL.
	PyodideURL string

	// Packages are loaded into Pyodide before the editor is enabled.  Defaults to DefaultPackages().
	Packages []string
}

// PageData is the data the index template executes against.
type PageData struct {
	Title      string
	PyodideURL string
	RunPath    string
	Packages   []string
}

func (o PageOptions) data() PageData {
	d := PageData{
		Title:      o.Title,
		PyodideURL: o.PyodideURL,
		RunPath:    RunPath,
		Packages:   o.Packages,
	}

	if len(d.Title) == 0 {
		d.Title = DefaultTitle
	}

	if len(d.PyodideURL) == 0 {
		d.PyodideURL = DefaultPyodideURL
	}

	if d.Packages == nil {
		d.Packages = DefaultPackages()
	}

	return d
}

func (o PageOptions) parse() (*template.Template, error) {
	if len(o.TemplateFile) == 0 {
		return template.New(indexTemplateName).Parse(indexTemplate)
	}

	t, err := template.New(filepath.Base(o.TemplateFile)).ParseFiles(o.TemplateFile)
	if err != nil {
		return nil, fmt.Errorf("unable to parse page template %s: %w", o.TemplateFile, err)
	}

	return t, nil
}

// Page is the http.Handler that renders the index document.
type Page struct {
	data PageData
	load func() (*template.Template, error)
}

// NewPage parses the page template.  When reload is set the template is instead parsed on every
// request, so edits to a TemplateFile show up without a restart and a missing file only fails
// the requests that need it.
func NewPage(o PageOptions, reload bool) (*Page, error) {
	p := &Page{
		data: o.data(),
		load: o.parse,
	}

	if !reload {
		t, err := o.parse()
		if err != nil {
			return nil, err
		}

		p.load = func() (*template.Template, error) { return t, nil }
	}

	return p, nil
}

func (p *Page) render() ([]byte, error) {
	t, err := p.load()
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	if err := t.Execute(&output, p.data); err != nil {
		return nil, fmt.Errorf("unable to execute page template: %w", err)
	}

	return output.Bytes(), nil
}

func (p *Page) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	body, err := p.render()
	if err != nil {
		logging.GetLogger(request.Context()).Error("unable to render page", zap.Error(err))
		xhttp.WriteErrorf(response, http.StatusInternalServerError, "unable to render page: %s", err)
		return
	}

	response.Header().Set("Content-Type", xhttp.ContentTypeHTML)
	response.Header().Set("Content-Length", strconv.Itoa(len(body)))
	response.WriteHeader(http.StatusOK)
	response.Write(body)
}
