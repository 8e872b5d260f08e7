package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// matchInput holds the flags shared by check and score.
type matchInput struct {
	resumePath string
	jdText     string
	jdFile     string
}

func (in *matchInput) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.resumePath, "resume", "", "Path to the resume (PDF, DOCX or text)")
	cmd.Flags().StringVar(&in.jdText, "jd", "", "Job description text")
	cmd.Flags().StringVar(&in.jdFile, "jd-file", "", "Path to a file containing the job description")
	_ = cmd.MarkFlagRequired("resume")
	cmd.MarkFlagsMutuallyExclusive("jd", "jd-file")
	cmd.MarkFlagsOneRequired("jd", "jd-file")
}

// load reads the resume bytes and resolves the job description text.
func (in *matchInput) load() (filename string, document []byte, jobDescription string, err error) {
	document, err = os.ReadFile(in.resumePath)
	if err != nil {
		return "", nil, "", fmt.Errorf("failed to read resume: %w", err)
	}

	jobDescription = in.jdText
	if in.jdFile != "" {
		raw, err := os.ReadFile(in.jdFile)
		if err != nil {
			return "", nil, "", fmt.Errorf("failed to read job description: %w", err)
		}
		jobDescription = string(raw)
	}

	if strings.TrimSpace(jobDescription) == "" {
		return "", nil, "", fmt.Errorf("job description is empty")
	}

	return filepath.Base(in.resumePath), document, jobDescription, nil
}
