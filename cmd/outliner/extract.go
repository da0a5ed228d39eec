package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/outliner/internal/extract"
	"github.com/jackzampolin/outliner/internal/pdf"
	"github.com/jackzampolin/outliner/internal/providers"
	"github.com/jackzampolin/outliner/internal/svcctx"
	"github.com/jackzampolin/outliner/internal/toc"
)

var (
	extractPages    string
	extractOffset   int
	extractProvider string
	extractModel    string
	extractDPI      int
	extractWrite    string
)

var extractCmd = &cobra.Command{
	Use:   "extract <book.pdf>",
	Short: "Extract a table of contents from a scanned PDF",
	Long: `Extract runs the extraction pipeline over the given TOC page ranges
and prints the entries. With --write it also builds a bookmark outline
and saves it into a copy of the PDF.

Use --provider none to skip the model entirely and rely on the regex
fallback.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc := svcctx.ServicesFrom(ctx)
		logger := svc.Logger
		cfg := svc.Config.Get()

		ranges, err := toc.ParseRanges(extractPages)
		if err != nil {
			return err
		}

		doc, err := pdf.Open(args[0])
		if err != nil {
			return err
		}
		defer doc.Close()

		providerName := extractProvider
		if providerName == "" {
			providerName = cfg.Defaults.LLMProvider
		}

		var client providers.LLMClient
		model := extractModel
		if providerName != "" && providerName != "none" {
			client, err = svc.Registry.GetLLM(providerName)
			if err != nil {
				return fmt.Errorf("%w: %v", extract.ErrModelInit, err)
			}
			if model == "" {
				if p, ok := cfg.GetLLMProvider(providerName); ok {
					model = p.Model
				}
			}
		}

		dpi := extractDPI
		if dpi == 0 {
			dpi = cfg.Defaults.DPI
		}

		renderer := pdf.NewRenderer(args[0])
		defer renderer.Close()

		ex := &extract.Extractor{
			Client:         client,
			Model:          model,
			SupportsImages: cfg.SupportsImages(model),
			Doc:            doc,
			Renderer:       renderer,
			Offset:         extractOffset,
			DPI:            dpi,
			Logger:         logger,
		}

		res, err := ex.Run(ctx, ranges)
		if err != nil {
			return err
		}

		if !res.Found() {
			logger.Warn("no table of contents found", "file", args[0])
			if extractWrite != "" {
				return extract.ErrNoTOCFound
			}
			return svc.Output.Print(res)
		}

		if extractWrite != "" {
			root := toc.BuildOutline(res.Entries, doc.NumPages(), logger)
			if err := pdf.WriteOutline(args[0], extractWrite, root); err != nil {
				return err
			}
			logger.Info("wrote outline", "file", extractWrite, "entries", root.Count())
		}

		return svc.Output.Print(res)
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractPages, "pages", "", "TOC page ranges, e.g. \"2-4,7\" (required)")
	extractCmd.Flags().IntVar(&extractOffset, "offset", 0, "added to every extracted page number")
	extractCmd.Flags().StringVar(&extractProvider, "provider", "", "LLM provider name, or \"none\" for regex-only")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "model override for the chosen provider")
	extractCmd.Flags().IntVar(&extractDPI, "dpi", 0, "render resolution for image-assisted extraction")
	extractCmd.Flags().StringVar(&extractWrite, "write", "", "write the outline into a copy of the PDF at this path")
	extractCmd.MarkFlagRequired("pages")
}
