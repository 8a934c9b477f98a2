package pdftext

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// PopplerDecoder shells out to poppler's pdftotext. Binary defaults to
// "pdftotext" on PATH.
type PopplerDecoder struct {
	Binary string
}

// Pages runs pdftotext on path and splits its output into pages.
func (d PopplerDecoder) Pages(ctx context.Context, path string) ([]string, error) {
	bin := d.Binary
	if bin == "" {
		bin = "pdftotext"
	}
	out, err := exec.CommandContext(ctx, bin, path, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed: %w", err)
	}
	return splitFormFeeds(string(out)), nil
}

// splitFormFeeds splits pdftotext output, which ends every page with a form
// feed, into pages.
func splitFormFeeds(out string) []string {
	if out == "" {
		return nil
	}
	pages := strings.Split(out, "\f")
	if pages[len(pages)-1] == "" {
		pages = pages[:len(pages)-1]
	}
	return pages
}
