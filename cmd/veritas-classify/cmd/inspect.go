package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"veritas/internal/core/artifact"
)

func newInspectCmd(load func() (*artifact.Bundle, error)) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print metadata about the loaded artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := load()
			if err != nil {
				return err
			}
			info := b.Info()
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			fmt.Fprintf(out, "model_id:    %s\n", info.ModelID)
			fmt.Fprintf(out, "features:    %d\n", info.Features)
			fmt.Fprintf(out, "ngram_range: %d-%d\n", info.NGramRange[0], info.NGramRange[1])
			fmt.Fprintf(out, "norm:        %s\n", info.Norm)
			fmt.Fprintf(out, "calibration: %s (%d folds)\n", info.Method, info.Folds)
			for _, f := range []artifact.FileInfo{info.Vectorizer, info.Model} {
				fmt.Fprintf(out, "%s: %s sha256=%s bytes=%d compression=%s\n", f.Format, f.Path, f.SHA256, f.Bytes, f.Compression)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
