package main

import (
	"github.com/spf13/cobra"

	"alfredoptarigan/smart-ats/internal/client"
	"alfredoptarigan/smart-ats/internal/config"
	"alfredoptarigan/smart-ats/internal/services"
)

var scoreInput matchInput

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume locally without the API server",
	RunE:  runScore,
}

func init() {
	scoreInput.bind(scoreCmd)
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	filename, document, jobDescription, err := scoreInput.load()
	if err != nil {
		return err
	}

	normalizer, err := services.NewNormalizer()
	if err != nil {
		return err
	}

	analyzer := services.NewAnalyzerService(
		services.NewDocumentExtractor(),
		normalizer,
		nil,
		cfg.Matching.MaxMissingKeywords,
	)

	result, err := analyzer.Analyze(cmd.Context(), services.AnalyzeInput{
		Document:       document,
		FileName:       filename,
		JobDescription: jobDescription,
	})
	if err != nil {
		return err
	}

	return client.Render(cmd.OutOrStdout(), result)
}
