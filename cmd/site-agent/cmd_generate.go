package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/janhq/site-agent/internal/domain/agent"
	agentres "github.com/janhq/site-agent/internal/interfaces/httpserver/responses/agent"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a complete project on disk",
		Long: `Plan a project from an objective, ask the model for every scaffold file
and write the files under the output directory. Prints the plan, the written
files and the commit hash as JSON.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	cmd.Flags().StringP("objective", "o", "", "Description of the project to generate")
	cmd.Flags().String("output", "", "Base output directory (defaults to OUTPUT_DIR)")
	cmd.Flags().Bool("overwrite", false, "Overwrite files that already exist")
	cmd.Flags().Bool("git", false, "Initialize a git repository and commit the result")
	_ = cmd.MarkFlagRequired("objective")

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	objective, _ := cmd.Flags().GetString("objective")
	output, _ := cmd.Flags().GetString("output")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	git, _ := cmd.Flags().GetBool("git")

	a, err := newApp()
	if err != nil {
		return err
	}

	result, err := a.agent.Generate(cmd.Context(), agent.GenerateInput{
		Objective:  objective,
		OutputPath: output,
		Overwrite:  overwrite,
		Git:        git,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(agentres.NewGenerateResponse(result))
}
