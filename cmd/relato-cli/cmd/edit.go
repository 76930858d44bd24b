package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"relato/internal/adapters/content"
	"relato/internal/adapters/editor"
)

var editFile string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the page declaration in $EDITOR",
	Long: `Open the YAML page declaration in your editor and validate it when
the editor exits. A missing file is first seeded with the built-in page.

Examples:
  relato-cli edit --file page.yaml
  EDITOR="code --wait" relato-cli edit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		path := editFile
		if path == "" {
			path = cfg.ContentFile
		}
		if path == "" {
			return fmt.Errorf("no content file: pass --file or set content_file")
		}

		if err := seed(ctx, path); err != nil {
			return err
		}
		if err := editor.New().Edit(ctx, path); err != nil {
			return err
		}

		page, err := content.NewSource(path).LoadPage(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d sections, %d images\n", path, len(page.Sections), len(page.Gallery))
		return nil
	},
}

// seed writes the built-in page to path unless the file already exists
func seed(ctx context.Context, path string) error {
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return err
	}

	page, err := content.Embedded().LoadPage(ctx)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := content.Encode(f, page); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editFile, "file", "f", "", "YAML declaration to edit (default: configured content file)")
}
