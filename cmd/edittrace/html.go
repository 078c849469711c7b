package main

import (
	"html/template"
	"os"

	"github.com/katalvlaran/edittrace"
)

// ── HTML export ───────────────────────────────────────────────────────────────

const tmplTrace = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>edittrace {{printf "%q" .A}} → {{printf "%q" .B}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'JetBrains Mono',monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;line-height:1.5;padding:16px}
h1{font-size:16px;font-weight:700;color:#f0f6fc;margin-bottom:12px}
h2{font-size:13px;font-weight:600;color:#8b949e;text-transform:uppercase;letter-spacing:.06em;margin:16px 0 8px}
table{border-collapse:collapse;font-size:12px}
td,th{border:1px solid #30363d;padding:4px 10px;text-align:center;min-width:34px}
th{color:#8b949e;background:#161b22}
td.path{background:#1f6feb;color:#fff;font-weight:700}
td.final{outline:2px solid #56d364}
.dim{color:#8b949e}
.steps{margin-top:8px;font-size:11px}
.steps div{padding:2px 8px;border-bottom:1px solid #21262d}
.steps .op{color:#79c0ff}
</style>
</head>
<body>
<h1>edit distance {{printf "%q" .A}} → {{printf "%q" .B}} = {{.Distance}}</h1>
<h2>cost table</h2>
<table>
<tr><th></th><th>ε</th>{{range .BTokens}}<th>{{.}}</th>{{end}}</tr>
{{range $i, $row := .Cost}}
<tr><th>{{index $.ATokens $i}}</th>{{range $j, $v := $row}}<td class="{{cellClass $i $j}}">{{$v}}</td>{{end}}</tr>
{{end}}
</table>
<h2>steps ({{len .Steps}})</h2>
<div class="steps">
{{range .Steps}}<div>({{.Cell.I}},{{.Cell.J}}) <span class="op">{{.Chosen.Op}}</span> → {{.Chosen.Value}}</div>
{{end}}
</div>
<p class="dim">bordered blue cells lie on one optimal backtrace path; the green-outlined cell is the final distance.</p>
</body>
</html>`

// traceView adapts a Trace for the template: pre-split token labels and
// a class lookup so the template stays free of coordinate logic.
type traceView struct {
	A, B     string
	ATokens  []string
	BTokens  []string
	Cost     [][]int
	Steps    []edittrace.Step[rune]
	Distance int
}

// exportHTML writes a self-contained HTML page of the cost table with
// the backtrace path highlighted and the full step log below it.
func exportHTML(out string, tr *edittrace.Trace[rune], path map[edittrace.Coord]struct{}) error {
	view := traceView{
		A:        string(tr.A),
		B:        string(tr.B),
		ATokens:  rowLabels(tr.A),
		BTokens:  tokenLabels(tr.B),
		Cost:     tr.Cost,
		Steps:    tr.Steps,
		Distance: tr.Distance(),
	}

	funcMap := template.FuncMap{
		"cellClass": func(i, j int) string {
			final := i == len(tr.A) && j == len(tr.B)
			_, onPath := path[edittrace.Coord{I: i, J: j}]
			switch {
			case onPath && final:
				return "path final"
			case onPath:
				return "path"
			case final:
				return "final"
			}

			return ""
		},
	}

	t, err := template.New("trace").Funcs(funcMap).Parse(tmplTrace)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	return t.Execute(f, view)
}

// rowLabels returns the row header labels: ε for the empty prefix,
// then one label per token.
func rowLabels(tokens []rune) []string {
	labels := make([]string, 0, len(tokens)+1)
	labels = append(labels, "ε")

	return append(labels, tokenLabels(tokens)...)
}

// tokenLabels stringifies runes for header cells.
func tokenLabels(tokens []rune) []string {
	labels := make([]string, len(tokens))
	for i, r := range tokens {
		labels[i] = string(r)
	}

	return labels
}
