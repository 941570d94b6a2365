package chat

import "github.com/sashabaranov/go-openai"

// AdaptRequest rewrites an inbound chat completion request for the Gemini
// compatibility endpoint, which rejects the max_completion_tokens field.
// A non-zero max_completion_tokens wins over any existing max_tokens value.
func AdaptRequest(request openai.ChatCompletionRequest) openai.ChatCompletionRequest {
	if request.MaxCompletionTokens != 0 {
		request.MaxTokens = request.MaxCompletionTokens
	}
	request.MaxCompletionTokens = 0
	return request
}
