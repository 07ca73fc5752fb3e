package openai

const (
	// DefaultBaseURL is the default API base URL.
	DefaultBaseURL = "https://api.openai.com/v1"
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gpt-5-turbo"
)

// Chat message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
