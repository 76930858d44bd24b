package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"relato/internal/domain"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the page sections in scroll order",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := GetSource().LoadPage(context.Background())
		if err != nil {
			return err
		}

		for _, s := range page.Registry().Sections() {
			decl, _ := page.Section(s.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s %s %s\n", s.Index, s.ID, s.Kind, decl.Nav)
		}
		return nil
	},
}

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "List the gallery catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := GetSource().LoadPage(context.Background())
		if err != nil {
			return err
		}

		for i, img := range page.Gallery {
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s %s\n", i+1, img.ID, img.URL)
		}
		return nil
	},
}

var captionCmd = &cobra.Command{
	Use:   "caption <image-id>",
	Short: "Show the caption of a gallery image",
	Long: `Show the caption displayed in the gallery overlay for an image.

Examples:
  relato-cli caption galeria_1.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := GetSource().LoadPage(context.Background())
		if err != nil {
			return err
		}

		seq := page.GallerySequence()
		i := seq.IndexOf(args[0])
		if i < 0 {
			return fmt.Errorf("image %s: %w", args[0], domain.ErrNotFound)
		}
		c := seq.CaptionFor(args[0])

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d / %d %s\n", i+1, seq.Len(), args[0])
		fmt.Fprintln(out, c.Title)
		fmt.Fprintln(out, c.Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(captionCmd)
}
