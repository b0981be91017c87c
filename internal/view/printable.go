package view

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const defaultTitle = "Ledger"

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`|`, `\|`,
	"\r", " ",
	"\n", " ",
)

var printPage = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// Printable is the exportable rendition of the ledger view.
type Printable struct {
	Title   string
	Balance string
	Rows    []Row
}

func NewPrintable(title string, balance decimal.Decimal, rows []Row, f *Formatter) *Printable {
	if title == "" {
		title = defaultTitle
	}
	return &Printable{
		Title:   title,
		Balance: f.Format(balance),
		Rows:    rows,
	}
}

func (p *Printable) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(p.Title))
	fmt.Fprintf(&b, "**Current balance:** %s\n\n", escapeMarkdown(p.Balance))

	if len(p.Rows) == 0 {
		b.WriteString("No transactions.\n")
		return b.String()
	}

	b.WriteString("| # | Date | Type | Description | Amount | Balance |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, row := range p.Rows {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			row.Index,
			escapeMarkdown(row.Date),
			escapeMarkdown(row.Type),
			escapeMarkdown(row.Description),
			escapeMarkdown(row.Amount),
			escapeMarkdown(row.Balance),
		)
	}
	return b.String()
}

// HTML renders a standalone page ready for the browser's print dialog.
func (p *Printable) HTML() ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert([]byte(p.Markdown()), &body); err != nil {
		return nil, fmt.Errorf("view: render markdown: %w", err)
	}

	var page bytes.Buffer
	err := printPage.Execute(&page, struct {
		Title string
		Body  template.HTML
	}{
		Title: p.Title,
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("view: render page: %w", err)
	}
	return page.Bytes(), nil
}

// Terminal renders the document for a terminal of the given width without colors.
func (p *Printable) Terminal(width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("view: create renderer: %w", err)
	}

	out, err := r.Render(p.Markdown())
	if err != nil {
		return "", fmt.Errorf("view: render terminal: %w", err)
	}
	return out, nil
}

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
