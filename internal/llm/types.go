package llm

// Role identifies the author of a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a chat conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

const (
	// DefaultTemperature is used when a request leaves Temperature unset.
	DefaultTemperature float32 = 0.85
	// DefaultMaxTokens is used when a request leaves MaxTokens unset.
	DefaultMaxTokens = 1024

	minTemperature float32 = 0
	maxTemperature float32 = 2
)

// GenerationRequest holds a conversation and the parameters for one completion.
type GenerationRequest struct {
	// Messages is the ordered conversation. Callers must not modify it after
	// handing the request to a caller.
	Messages []Message

	// Temperature controls the randomness of the output, in [0, 2].
	// If nil, DefaultTemperature is used.
	Temperature *float32

	// MaxTokens caps the completion length.
	// If 0 or negative, DefaultMaxTokens is used.
	MaxTokens int
}

// Temp returns a pointer to t, for filling GenerationRequest.Temperature.
func Temp(t float32) *float32 {
	return &t
}

// WithDefaults returns a copy of the request with defaults applied and the
// temperature clamped to the accepted range.
func (r GenerationRequest) WithDefaults() GenerationRequest {
	out := r
	temp := DefaultTemperature
	if r.Temperature != nil {
		temp = *r.Temperature
	}
	if temp < minTemperature {
		temp = minTemperature
	}
	if temp > maxTemperature {
		temp = maxTemperature
	}
	out.Temperature = &temp
	if out.MaxTokens <= 0 {
		out.MaxTokens = DefaultMaxTokens
	}
	return out
}

// chatRequest is the wire payload for chat completions.
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// chatChoice represents a single choice in the chat response.
type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

// chatResponse represents the response from the chat completions API.
type chatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}
