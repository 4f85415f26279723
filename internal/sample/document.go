package sample

import (
	"bytes"
	"encoding/base64"
	"html/template"
)

// Letter paper at the CSS reference resolution of 96 px per inch.
const (
	paperWidthIn  = 8.5
	paperHeightIn = 11.0
	viewportW     = 816
	viewportH     = 1056
)

var textTmpl = template.Must(template.New("text").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: letter; margin: 0; }
  body { margin: 0; font-family: "Noto Sans", "Noto Sans CJK KR", sans-serif; font-size: 14pt; }
  .page { box-sizing: border-box; width: 8.5in; height: 11in; padding: 1in; white-space: pre-wrap; overflow: hidden; }
  .page + .page { break-before: page; }
</style>
</head>
<body>
{{- range .}}
<div class="page">{{.}}</div>
{{- end}}
</body>
</html>
`))

var scannedTmpl = template.Must(template.New("scanned").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: letter; margin: 0; }
  body { margin: 0; }
  img { display: block; width: 8.5in; height: 11in; }
  img + img { break-before: page; }
</style>
</head>
<body>
{{- range .}}
<img src="{{.}}">
{{- end}}
</body>
</html>
`))

// textHTML lays out one letter page per element. Page text is escaped.
func textHTML(pages []string) (string, error) {
	var buf bytes.Buffer
	if err := textTmpl.Execute(&buf, pages); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// scannedHTML lays out one full-bleed image per page.
func scannedHTML(pngs [][]byte) (string, error) {
	srcs := make([]template.URL, len(pngs))
	for i, p := range pngs {
		srcs[i] = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(p))
	}
	var buf bytes.Buffer
	if err := scannedTmpl.Execute(&buf, srcs); err != nil {
		return "", err
	}
	return buf.String(), nil
}
