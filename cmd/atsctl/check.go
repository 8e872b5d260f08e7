package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"alfredoptarigan/smart-ats/internal/client"
	"alfredoptarigan/smart-ats/internal/config"
)

var (
	checkInput  matchInput
	checkServer string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Score a resume against a job description using the API server",
	Long:  `Upload a resume and a job description to the scoring service and render the match gauge and missing keywords.`,
	RunE:  runCheck,
}

func init() {
	checkInput.bind(checkCmd)
	checkCmd.Flags().StringVar(&checkServer, "server", "", "Scoring service base URL (default $ATS_SERVER_URL or http://127.0.0.1:8000)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if checkServer != "" {
		cfg.Client.ServerURL = checkServer
	}

	filename, document, jobDescription, err := checkInput.load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Analyzing... connecting to the scoring service")

	c := client.New(cfg.Client.ServerURL, cfg.Client.Timeout)
	result, err := c.Analyze(cmd.Context(), filename, document, jobDescription)
	if err != nil {
		if errors.Is(err, client.ErrConnection) {
			return fmt.Errorf("❌ could not connect to the backend at %s, make sure the API server is running", cfg.Client.ServerURL)
		}
		return err
	}

	return client.Render(out, result)
}
