package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/outliner/internal/pdf"
	"github.com/jackzampolin/outliner/internal/svcctx"
	"github.com/jackzampolin/outliner/internal/toc"
)

var outlineCmd = &cobra.Command{
	Use:   "outline <book.pdf> <toc.json> <out.pdf>",
	Short: "Write a user-supplied TOC into a PDF as a bookmark outline",
	Long: `Outline takes a JSON array of {"title","page","level"} objects,
validates it against the document, and writes the resulting bookmark
tree into a copy of the PDF. Entries with out-of-range pages are
dropped with a diagnostic.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := svcctx.LoggerFrom(cmd.Context())

		doc, err := pdf.Open(args[0])
		if err != nil {
			return err
		}
		defer doc.Close()

		data, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		entries, report, err := toc.ParseUserToc(string(data), doc.NumPages())
		if err != nil {
			return err
		}
		for _, rej := range report.Rejected {
			logger.Warn("dropped TOC entry", "index", rej.Index, "reason", rej.Reason)
		}

		root := toc.BuildOutline(entries, doc.NumPages(), logger)
		if err := pdf.WriteOutline(args[0], args[2], root); err != nil {
			return err
		}

		logger.Info("wrote outline",
			"file", args[2],
			"entries", root.Count(),
			"dropped", len(report.Rejected))
		return nil
	},
}
