package pdf

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/jackzampolin/outliner/internal/extract"
	"github.com/jackzampolin/outliner/internal/toc"
)

type renderKey struct {
	page int
	dpi  int
}

// Renderer renders PDF pages to PNG via pdftoppm (poppler-utils) and
// caches the bytes per (page, dpi) for the session. pdftoppm renders
// the page correctly, unlike pdfcpu image extraction which pulls
// embedded image objects whose internal numbering may not match page
// order.
type Renderer struct {
	path string

	mu    sync.Mutex
	cache map[renderKey][]byte

	// renderFn is swappable for tests.
	renderFn func(page, dpi int) ([]byte, error)
}

// NewRenderer creates a renderer for the given PDF file.
func NewRenderer(path string) *Renderer {
	r := &Renderer{
		path:  path,
		cache: make(map[renderKey][]byte),
	}
	r.renderFn = r.renderPage
	return r
}

// RenderPages renders every page in the range at the given DPI.
func (r *Renderer) RenderPages(pr toc.PageRange, dpi int) ([]extract.PageImage, error) {
	if dpi <= 0 {
		dpi = extract.DefaultDPI
	}

	images := make([]extract.PageImage, 0, pr.Pages())
	for p := pr.Start; p <= pr.End; p++ {
		data, err := r.renderCached(p, dpi)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", p, err)
		}
		images = append(images, extract.PageImage{Page: p, PNG: data})
	}
	return images, nil
}

// Close drops the render cache.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[renderKey][]byte)
}

func (r *Renderer) renderCached(page, dpi int) ([]byte, error) {
	key := renderKey{page: page, dpi: dpi}

	r.mu.Lock()
	data, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		return data, nil
	}

	data, err := r.renderFn(page, dpi)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[key] = data
	r.mu.Unlock()
	return data, nil
}

// renderPage renders a single page with pdftoppm.
func (r *Renderer) renderPage(page, dpi int) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "outliner-page-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	outputPrefix := filepath.Join(tmpDir, "page")

	// -png: output PNG format
	// -f N / -l N: first and last page to render
	// -r N: resolution in DPI
	// -singlefile: don't add page number suffix
	pageStr := fmt.Sprintf("%d", page)
	cmd := exec.Command("pdftoppm",
		"-png",
		"-f", pageStr,
		"-l", pageStr,
		"-r", fmt.Sprintf("%d", dpi),
		"-singlefile",
		r.path,
		outputPrefix,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w (output: %s)", err, string(output))
	}

	srcPath := outputPrefix + ".png"
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return nil, fmt.Errorf("pdftoppm did not create expected output: %w", err)
	}
	return data, nil
}

// Verify interface
var _ extract.PageRenderer = (*Renderer)(nil)
