package analysis

// AnalyzeInput carries the user's procurement question.
type AnalyzeInput struct {
	Query string
}
