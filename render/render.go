// Copyright 2024 Daniel Erat.
// All rights reserved.

// Package render generates HTML pages describing edit traces.
package render

import (
	"fmt"
	"html/template"
	"io"
	"io/ioutil"
	"log"
	"time"

	"github.com/derat/spellfix/edit"
	"github.com/pkg/browser"
)

const pageTmpl = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Source}} → {{.Target}}</title>
<style>
  body { font-family: sans-serif; margin: 1em; }
  table { border-collapse: collapse; margin-bottom: 1em; }
  td, th { border: 1px solid #aaa; padding: 2px 6px; text-align: center; }
  td.op { font-family: monospace; }
</style>
</head>
<body>
<h1>Editing &quot;{{.Source}}&quot; into &quot;{{.Target}}&quot;</h1>
<p>Edit distance: <b>{{.Distance}}</b></p>
<h2>Distance matrix</h2>
<table>
{{- range .Matrix}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</table>
<h2>Backtrace</h2>
<table>
{{- range .Grid}}
<tr>{{range .}}<td class="op">{{.}}</td>{{end}}</tr>
{{- end}}
</table>
<h2>Operations</h2>
<ol>
{{- range .Steps}}
<li>{{.}}</li>
{{- end}}
</ol>
</body>
</html>
`

// pageData is passed to pageTmpl.
type pageData struct {
	Source, Target string
	Distance       int
	Matrix         [][]int
	Grid           [][]string
	Steps          []string
}

// Write writes an HTML page describing tr to w.
func Write(w io.Writer, tr *edit.Trace) error {
	tmpl, err := template.New("page").Parse(pageTmpl)
	if err != nil {
		return err
	}
	data := pageData{
		Source:   tr.Source(),
		Target:   tr.Target(),
		Distance: tr.Distance(),
		Matrix:   tr.Matrix(),
	}
	for _, row := range tr.BacktraceASCII() {
		var cells []string
		for _, r := range row {
			cells = append(cells, string(r))
		}
		data.Grid = append(data.Grid, cells)
	}
	for _, step := range tr.Operations() {
		data.Steps = append(data.Steps, Describe(step))
	}
	return tmpl.Execute(w, data)
}

// OpenFile writes an HTML page describing tr to a temporary file
// and opens it in a browser.
func OpenFile(tr *edit.Trace) error {
	tf, err := ioutil.TempFile("",
		fmt.Sprintf("spellfix-%s-*.html", time.Now().Format("20060102-150405")))
	if err != nil {
		return err
	}
	log.Print("Writing page to ", tf.Name())
	if err := Write(tf, tr); err != nil {
		return err
	}
	if err := tf.Close(); err != nil {
		return err
	}
	return browser.OpenFile(tf.Name())
}

// Describe returns a human-readable description of step,
// e.g. `replace 'p' (source 4) with 'v' (target 5)`.
func Describe(step edit.Step) string {
	switch step.Op {
	case edit.Insert:
		return fmt.Sprintf("insert %q (target %d)", step.DstRune, step.DstIndex)
	case edit.Delete:
		return fmt.Sprintf("delete %q (source %d)", step.SrcRune, step.SrcIndex)
	case edit.Replace:
		return fmt.Sprintf("replace %q (source %d) with %q (target %d)",
			step.SrcRune, step.SrcIndex, step.DstRune, step.DstIndex)
	}
	return fmt.Sprintf("keep %q (source %d, target %d)", step.SrcRune, step.SrcIndex, step.DstIndex)
}
