package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/ShadowStrikeHQ/codeintel-dead-code-finder/internal/types"
)

// HTMLFormatter renders the markdown report to a standalone HTML page.
// The GFM extension is required for the findings tables.
type HTMLFormatter struct{}

const htmlHeader = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Dead Code Report</title>
<style>
body { font-family: -apple-system, sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; color: #1f2328; }
table { border-collapse: collapse; width: 100%%; margin: 1rem 0; }
th, td { border: 1px solid #d1d9e0; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f6f8fa; }
code { background: #f6f8fa; padding: 0.1rem 0.3rem; border-radius: 4px; font-size: 0.9em; }
blockquote { color: #59636e; border-left: 0.25rem solid #d1d9e0; margin: 0; padding: 0 1rem; }
</style>
</head>
<body>
`

const htmlFooter = "</body>\n</html>\n"

func (f *HTMLFormatter) Format(w io.Writer, report *types.Report) error {
	var md bytes.Buffer
	if err := (&MarkdownFormatter{}).Format(&md, report); err != nil {
		return err
	}

	var body bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := converter.Convert(md.Bytes(), &body); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}

	if _, err := fmt.Fprintf(w, htmlHeader); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, htmlFooter)
	return err
}
