package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"relato/internal/adapters/content"
	"relato/internal/adapters/sqlite"
	"relato/internal/ports"
)

var (
	importFile string
	importDB   string
	exportOut  string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a page declaration into the SQLite content index",
	Long: `Read a YAML page declaration (the embedded page when --file is
empty), validate it and replace the content of the index.

Set content_db in the config to make every binary read from the index.

Examples:
  relato-cli import
  relato-cli import --file page.yaml --db ~/.local/share/relato/page.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		file := importFile
		if file == "" {
			file = cfg.ContentFile
		}
		page, err := content.NewSource(file).LoadPage(ctx)
		if err != nil {
			return err
		}

		dbPath := importDB
		if dbPath == "" {
			dbPath = cfg.ContentDB
		}
		if dbPath == "" {
			dbPath = sqlite.DefaultPath(file)
		}

		var idx ports.ContentIndex = sqlite.NewIndex()
		if err := idx.Open(dbPath); err != nil {
			return err
		}
		defer idx.Close()

		if err := idx.Import(ctx, page); err != nil {
			return err
		}

		slog.Info("page imported", "db", dbPath, "sections", len(page.Sections), "images", len(page.Gallery))
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sections and %d images into %s\n",
			len(page.Sections), len(page.Gallery), dbPath)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current page declaration as YAML",
	Long: `Write the page the binaries currently serve as YAML, to stdout or
to the file given with --out.

Examples:
  relato-cli export > page.yaml
  relato-cli export --out page.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := GetSource().LoadPage(context.Background())
		if err != nil {
			return err
		}

		if exportOut == "" {
			return content.Encode(cmd.OutOrStdout(), page)
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOut, err)
		}
		if err := content.Encode(f, page); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)

	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "YAML declaration to import (default: configured content file)")
	importCmd.Flags().StringVar(&importDB, "db", "", "index database path (default: content_db, then a per-file path)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: stdout)")
}
