package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"veritas/internal/core/artifact"
	"veritas/internal/core/inference"
	pnet "veritas/internal/platform/net"
	predictsvc "veritas/internal/services/predict/service"
)

func newClassifyCmd(load func() (*artifact.Bundle, error)) *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "classify [text...]",
		Short: "Classify text given as arguments, with --file, or on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), file, args)
			if err != nil {
				return err
			}

			b, err := load()
			if err != nil {
				return err
			}
			engine, err := inference.New(b)
			if err != nil {
				return err
			}

			ctx := pnet.WithSurface(context.Background(), pnet.SurfaceCLI)
			res, predErr := predictsvc.New(engine, nil).Predict(ctx, raw)

			out := cmd.OutOrStdout()
			if asJSON {
				var env pnet.Wire
				if predErr != nil {
					_, env = pnet.Error(predErr, "")
				} else {
					_, env = pnet.OK(res, "")
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(env); err != nil {
					return err
				}
				return predErr
			}
			if predErr != nil {
				return predErr
			}

			verdict := "REAL"
			if res.IsFake() {
				verdict = "FAKE"
			}
			fmt.Fprintf(out, "This news is predicted to be %s.\n", verdict)
			fmt.Fprintf(out, "Probability Real: %.4f\n", res.ProbReal)
			fmt.Fprintf(out, "Probability Fake: %.4f\n", res.ProbFake)
			fmt.Fprintf(out, "Cleaned Input: %s\n", res.Cleaned)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read the article from this file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as a JSON envelope")

	return cmd
}

// readInput prefers args, then --file, then stdin
func readInput(stdin io.Reader, file string, args []string) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(b), nil
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
}
