package models

// AnalyzeResponse is the body returned by POST /analyze.
type AnalyzeResponse struct {
	MatchPercentage float64  `json:"match_percentage"`
	MissingKeywords []string `json:"missing_keywords"`
	ResumeLength    int      `json:"resume_length"`
	AnalysisID      string   `json:"analysis_id,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

type HistoryResponse struct {
	Analyses []Analysis `json:"analyses"`
	Count    int        `json:"count"`
}
