package services

// MissingKeywords lists job description terms absent from the resume that the
// job description also uses as a noun. Terms keep their first-seen order in
// jdTokens and the result holds at most limit entries.
func MissingKeywords(resumeTokens, jdTokens, jdNouns []string, limit int) []string {
	missing := []string{}
	if limit <= 0 {
		return missing
	}

	inResume := make(map[string]struct{}, len(resumeTokens))
	for _, tok := range resumeTokens {
		inResume[tok] = struct{}{}
	}

	nouns := make(map[string]struct{}, len(jdNouns))
	for _, noun := range jdNouns {
		nouns[noun] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, tok := range jdTokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}

		if _, ok := inResume[tok]; ok {
			continue
		}
		if _, ok := nouns[tok]; !ok {
			continue
		}

		missing = append(missing, tok)
		if len(missing) == limit {
			break
		}
	}

	return missing
}
