// Package extract drives a table-of-contents extraction job: per
// page-range tier selection, degradation, cross-range merging and
// final validation.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jackzampolin/outliner/internal/providers"
	"github.com/jackzampolin/outliner/internal/toc"
)

// ErrModelInit reports that a configured LLM provider could not be
// turned into a usable client. It is caller-fatal: it fires before any
// extraction work starts, never mid-job.
var ErrModelInit = errors.New("model initialization failed")

// ErrNoTOCFound reports a job that completed without finding any
// entries. Extraction itself treats this as a normal outcome; commands
// surface it when an empty result makes the requested work impossible.
var ErrNoTOCFound = errors.New("no table of contents found")

// DefaultDPI is the render resolution for image-assisted extraction.
const DefaultDPI = 300

// Document provides page-addressed access to the source PDF.
type Document interface {
	NumPages() int
	// PageText returns the plain text of each page in the range, in
	// order. Pages are 1-based.
	PageText(r toc.PageRange) ([]string, error)
}

// PageImage is one rendered page.
type PageImage struct {
	Page int
	PNG  []byte
}

// PageRenderer renders document pages to images. Implementations may
// cache; the orchestrator treats every call as idempotent.
type PageRenderer interface {
	RenderPages(r toc.PageRange, dpi int) ([]PageImage, error)
}

// Extractor runs one extraction job. Zero-value fields select
// degraded behavior: a nil Client skips both LLM tiers, a nil
// Renderer or false SupportsImages skips the image tier.
type Extractor struct {
	Client         providers.LLMClient
	Model          string
	SupportsImages bool

	Doc      Document
	Renderer PageRenderer

	Offset int // added to every resolved page number, once
	DPI    int

	Logger *slog.Logger
}

// Run processes the given page ranges strictly in order, escalating
// through tiers per range, and returns the merged validated result.
// Ranges are independent: a failure in one never blocks the next. An
// empty final list is a normal outcome, reported with StrategyNone and
// a nil error.
func (e *Extractor) Run(ctx context.Context, ranges []toc.PageRange) (*toc.ExtractionResult, error) {
	if e.Doc == nil {
		return nil, fmt.Errorf("%w: no document", ErrModelInit)
	}
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var merged []toc.TocEntry
	worst := toc.StrategyNone

	for _, r := range ranges {
		entries, strategy := e.extractRange(ctx, logger, r)
		logger.Info("range processed",
			"range", r.String(),
			"strategy", strategy.String(),
			"entries", len(entries))
		if len(entries) > 0 {
			merged = append(merged, entries...)
			if strategy > worst {
				worst = strategy
			}
		}
	}

	if len(merged) == 0 {
		logger.Info("no entries from any range, starting whole-document pass")
		merged, worst = e.wholeDocumentPass(ctx, logger)
	}

	final, report := toc.Finalize(merged, e.Doc.NumPages())
	logger.Info("extraction finished",
		"input", report.Input,
		"output", report.Output,
		"rejected", len(report.Rejected),
		"strategy", worst.String())

	if len(final) == 0 {
		return &toc.ExtractionResult{Strategy: toc.StrategyNone}, nil
	}
	return &toc.ExtractionResult{Entries: final, Strategy: worst}, nil
}

// extractRange escalates through the tier ladder for one range. LLM
// tiers must produce at least one entry to win; the pattern tier's
// output is taken as-is, empty or not.
func (e *Extractor) extractRange(ctx context.Context, logger *slog.Logger, r toc.PageRange) ([]toc.TocEntry, toc.Strategy) {
	for tier := e.startTier(); tier != tierDone; tier = tier.Next() {
		switch tier {
		case TierImageAssisted:
			entries, err := e.imageAssisted(ctx, r)
			if err != nil {
				logger.Warn("image-assisted tier failed, degrading",
					"range", r.String(), "error", err)
				continue
			}
			if len(entries) > 0 {
				return entries, toc.StrategyImageAssisted
			}
		case TierTextOnly:
			if e.Client == nil {
				continue
			}
			entries, err := e.textOnly(ctx, r)
			if err != nil {
				logger.Warn("text-only tier failed, degrading",
					"range", r.String(), "error", err)
				continue
			}
			if len(entries) > 0 {
				return entries, toc.StrategyTextOnly
			}
		case TierPatternFallback:
			text, err := e.rangeText(r)
			if err != nil {
				logger.Warn("pattern tier could not read page text",
					"range", r.String(), "error", err)
				return nil, toc.StrategyPattern
			}
			return toc.ExtractPattern(text, e.Offset), toc.StrategyPattern
		}
	}
	return nil, toc.StrategyNone
}

// rangeText joins the range's page text for a pattern scan.
func (e *Extractor) rangeText(r toc.PageRange) (string, error) {
	texts, err := e.Doc.PageText(r)
	if err != nil {
		return "", err
	}
	return strings.Join(texts, "\n"), nil
}

// startTier picks the highest tier the configuration supports.
func (e *Extractor) startTier() Tier {
	switch {
	case e.Client != nil && e.SupportsImages && e.Renderer != nil:
		return TierImageAssisted
	case e.Client != nil:
		return TierTextOnly
	default:
		return TierPatternFallback
	}
}

func (e *Extractor) imageAssisted(ctx context.Context, r toc.PageRange) ([]toc.TocEntry, error) {
	texts, err := e.Doc.PageText(r)
	if err != nil {
		return nil, fmt.Errorf("page text: %w", err)
	}

	dpi := e.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}
	images, err := e.Renderer.RenderPages(r, dpi)
	if err != nil {
		return nil, fmt.Errorf("render pages: %w", err)
	}

	msg := providers.Message{
		Role:    "user",
		Content: buildUserPrompt(r, texts),
	}
	for _, img := range images {
		msg.Images = append(msg.Images, img.PNG)
	}

	return e.chatEntries(ctx, imageSystemPrompt, msg)
}

func (e *Extractor) textOnly(ctx context.Context, r toc.PageRange) ([]toc.TocEntry, error) {
	texts, err := e.Doc.PageText(r)
	if err != nil {
		return nil, fmt.Errorf("page text: %w", err)
	}
	msg := providers.Message{
		Role:    "user",
		Content: buildUserPrompt(r, texts),
	}
	return e.chatEntries(ctx, textSystemPrompt, msg)
}

// chatEntries issues one LLM call and coerces its output into
// offset-adjusted entries. Range checks and dedup happen once, over
// the merged list.
func (e *Extractor) chatEntries(ctx context.Context, systemPrompt string, userMsg providers.Message) ([]toc.TocEntry, error) {
	req := &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: "system", Content: systemPrompt},
			userMsg,
		},
		Model: e.Model,
		ResponseFormat: &providers.ResponseFormat{
			Type:       "json_schema",
			JSONSchema: EntriesSchema,
		},
		RequestID: uuid.New().String(),
	}

	res, err := e.Client.Chat(ctx, req)
	if err != nil {
		return nil, err
	}

	entries, _ := toc.Coerce(candidatesFrom(res))
	toc.ApplyOffset(entries, e.Offset)
	return entries, nil
}

// candidatesFrom prefers validated structured output and falls back to
// recovering an array from the raw content.
func candidatesFrom(res *providers.ChatResult) toc.Candidates {
	if len(res.ParsedJSON) > 0 {
		var items []any
		if err := json.Unmarshal(res.ParsedJSON, &items); err == nil {
			return items
		}
	}
	return toc.ParseResponse(res.Content)
}

// wholeDocumentPass is the terminal-empty recovery: page-by-page
// text-only extraction over the whole document, then one combined-text
// pattern scan if the model found nothing either.
func (e *Extractor) wholeDocumentPass(ctx context.Context, logger *slog.Logger) ([]toc.TocEntry, toc.Strategy) {
	numPages := e.Doc.NumPages()

	var allText strings.Builder
	var merged []toc.TocEntry

	for page := 1; page <= numPages; page++ {
		r := toc.PageRange{Start: page, End: page}

		texts, err := e.Doc.PageText(r)
		if err != nil {
			logger.Warn("skipping unreadable page", "page", page, "error", err)
			continue
		}
		for _, t := range texts {
			allText.WriteString(t)
			allText.WriteString("\n")
		}

		if e.Client == nil {
			continue
		}
		entries, err := e.textOnly(ctx, r)
		if err != nil {
			logger.Warn("page-by-page extraction failed", "page", page, "error", err)
			continue
		}
		merged = append(merged, entries...)
	}

	if len(merged) > 0 {
		return merged, toc.StrategyTextOnly
	}
	return toc.ExtractPattern(allText.String(), e.Offset), toc.StrategyPattern
}
