package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// TextLayerDecoder reads the text layer of each page, decoding glyphs
// through the page fonts (ToUnicode maps, simple encodings and Differences).
// Files the reader rejects are rewritten with pdfcpu and read again.
// Scanned PDFs have no text layer and yield empty pages.
type TextLayerDecoder struct{}

// Pages returns the text of every page, one string per page.
func (TextLayerDecoder) Pages(ctx context.Context, path string) ([]string, error) {
	pages, err := readTextLayer(ctx, path)
	if err == nil {
		return pages, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	logCtx := slog.With("path", path)
	logCtx.Warn("Could not read PDF, rewriting it with pdfcpu.", "error", err)

	tempDir, tmpErr := os.MkdirTemp("", "pdftext-*")
	if tmpErr != nil {
		return nil, fmt.Errorf("failed to read PDF %s: %w", path, err)
	}
	defer os.RemoveAll(tempDir)

	rewritten := filepath.Join(tempDir, "rewritten.pdf")
	if rwErr := rewritePDF(path, rewritten); rwErr != nil {
		return nil, fmt.Errorf("failed to read PDF %s: %w (rewrite failed: %v)", path, err, rwErr)
	}
	pages, err = readTextLayer(ctx, rewritten)
	if err != nil {
		return nil, fmt.Errorf("failed to read rewritten PDF %s: %w", path, err)
	}
	logCtx.Info("Read PDF after rewrite.", "pageCount", len(pages))
	return pages, nil
}

// rewritePDF writes a cleaned copy of inPath, rebuilding its cross-reference
// table.
func rewritePDF(inPath, outPath string) error {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return api.OptimizeFile(inPath, outPath, cfg)
}

func readTextLayer(ctx context.Context, path string) (pages []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	// The reader panics on some malformed objects.
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("malformed PDF %s: %v", path, r)
		}
	}()

	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF %s: %w", path, err)
	}

	n := r.NumPage()
	pages = make([]string, 0, n)
	for pageNr := 1; pageNr <= n; pageNr++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := r.Page(pageNr)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := pageText(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read text of page %d: %w", pageNr, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// pageText lays the page's glyphs out in lines. Pages whose content cannot
// be positioned fall back to the reader's plain-text walk.
func pageText(p pdf.Page) (text string, err error) {
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%v", r)
			}
		}()
		text = layoutLines(p.Content().Text)
	}()
	if err == nil {
		return text, nil
	}

	fonts := make(map[string]*pdf.Font)
	for _, name := range p.Fonts() {
		font := p.Font(name)
		fonts[name] = &font
	}
	return p.GetPlainText(fonts)
}

// layoutLines joins glyphs in content order, starting a new line when the
// baseline moves and inserting a space where a positioned gap replaces one.
func layoutLines(glyphs []pdf.Text) string {
	var b strings.Builder
	var prev pdf.Text
	for i, g := range glyphs {
		if i > 0 {
			tolerance := math.Max(prev.FontSize, g.FontSize) / 2
			switch {
			case math.Abs(g.Y-prev.Y) > tolerance:
				b.WriteByte('\n')
			case prev.W > 0 && g.X-(prev.X+prev.W) > g.FontSize/4 && g.S != " " && prev.S != " ":
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
		prev = g
	}
	return b.String()
}
