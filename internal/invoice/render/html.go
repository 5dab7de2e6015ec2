// Package render provides the default invoice renderer. It produces a
// printable HTML document; swapping in a true PDF backend only requires
// another invoice.Renderer implementation.
package render

import (
	"bytes"
	"html/template"

	"github.com/mauriciopaint/backoffice/internal/invoice"
)

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Invoice {{.InvoiceNumber}}</title></head>
<body>
  <h1>{{.CompanyName}}</h1>
  <h2>Invoice {{.InvoiceNumber}}</h2>
  <p>Issue date: {{.IssueDate}}</p>
  <table>
    <tr><td>Project</td><td>{{.ProjectName}}</td></tr>
    <tr><td>Materials</td><td>{{.MaterialsCost}}</td></tr>
    <tr><td>Labor</td><td>{{.LaborCost}}</td></tr>
    <tr><td><strong>Total</strong></td><td><strong>{{.TotalAmount}}</strong></td></tr>
  </table>
</body>
</html>
`

type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tmpl: template.Must(template.New("invoice").Parse(invoiceTemplate)),
	}
}

func (r *HTMLRenderer) RenderInvoice(ctx invoice.RenderContext) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, ctx); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
