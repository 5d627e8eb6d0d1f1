// Package cmd implements the veritas-classify command line
package cmd

import (
	"github.com/spf13/cobra"

	"veritas/internal/core/artifact"
	"veritas/internal/platform/config"
)

// NewRootCmd builds the command tree. Artifact paths default to
// CORE_ARTIFACT_VECTORIZER_PATH and CORE_ARTIFACT_MODEL_PATH.
func NewRootCmd() *cobra.Command {
	artCfg := config.New().Prefix("CORE_ARTIFACT_")
	paths := artifact.Paths{
		Vectorizer: artCfg.MayString("VECTORIZER_PATH", artifact.DefaultVectorizerPath),
		Model:      artCfg.MayString("MODEL_PATH", artifact.DefaultModelPath),
	}

	cmd := &cobra.Command{
		Use:           "veritas-classify",
		Short:         "Classify news text as real or fake from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&paths.Vectorizer, "vectorizer", paths.Vectorizer, "path to the vectorizer artifact")
	cmd.PersistentFlags().StringVar(&paths.Model, "model", paths.Model, "path to the classifier artifact")

	// flags are parsed before RunE, so the loader is built lazily
	load := func() (*artifact.Bundle, error) { return artifact.NewLoader(paths).Load() }

	cmd.AddCommand(newClassifyCmd(load))
	cmd.AddCommand(newInspectCmd(load))
	return cmd
}

// Execute runs the root command with os.Args
func Execute() error {
	return NewRootCmd().Execute()
}
