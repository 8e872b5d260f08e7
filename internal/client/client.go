// Package client talks to the scoring service and renders its results for a terminal.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-ats/internal/models"
)

// ErrConnection is returned when the scoring service cannot be reached.
var ErrConnection = errors.New("could not connect to the backend")

// APIError is a non-2xx answer from the scoring service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scoring service returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	timeout time.Duration
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// Analyze submits a resume and a job description to POST /analyze.
func (c *Client) Analyze(ctx context.Context, filename string, document []byte, jobDescription string) (*models.AnalyzeResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	agent := fiber.Post(c.baseURL + "/analyze")
	agent.Timeout(timeout)

	// Files must be attached before the form is written
	agent.FileData(&fiber.FormFile{
		Fieldname: "resume",
		Name:      filename,
		Content:   document,
	})

	args := fiber.AcquireArgs()
	args.Set("job_description", jobDescription)
	agent.MultipartForm(args)
	fiber.ReleaseArgs(args)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w at %s: %v", ErrConnection, c.baseURL, errors.Join(errs...))
	}

	if code < 200 || code >= 300 {
		var errResp models.ErrorResponse
		message := strings.TrimSpace(string(body))
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			message = errResp.Error
		}
		return nil, &APIError{StatusCode: code, Message: message}
	}

	var result models.AnalyzeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode scoring response: %w", err)
	}

	return &result, nil
}
