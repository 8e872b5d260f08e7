package client

import (
	"fmt"
	"io"
	"math"
	"strings"

	"alfredoptarigan/smart-ats/internal/models"
)

const gaugeWidth = 40

// Band names the gauge range a score falls in.
func Band(score float64) string {
	switch {
	case score >= 75:
		return "strong"
	case score >= 50:
		return "fair"
	default:
		return "weak"
	}
}

// Gauge draws a 0-100 bar followed by the score, e.g. "[####....]  50.00%".
func Gauge(score float64) string {
	score = math.Max(0, math.Min(100, score))
	filled := int(math.Round(score / 100 * gaugeWidth))

	return fmt.Sprintf("[%s%s] %6.2f%%",
		strings.Repeat("#", filled),
		strings.Repeat(".", gaugeWidth-filled),
		score,
	)
}

// Render writes the match score gauge and the missing keyword tags.
func Render(w io.Writer, result *models.AnalyzeResponse) error {
	var b strings.Builder

	b.WriteString("JD Match Score\n")
	fmt.Fprintf(&b, "%s  (%s match)\n", Gauge(result.MatchPercentage), Band(result.MatchPercentage))
	fmt.Fprintf(&b, "Resume length: %d words after normalization\n\n", result.ResumeLength)

	b.WriteString("⚠️  Missing Keywords\n")
	if len(result.MissingKeywords) == 0 {
		b.WriteString("Great job! No major keywords missing.\n")
	} else {
		b.WriteString("Consider adding these to your resume:\n")
		tags := make([]string, len(result.MissingKeywords))
		for i, kw := range result.MissingKeywords {
			tags[i] = "`" + kw + "`"
		}
		b.WriteString(strings.Join(tags, ", "))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
