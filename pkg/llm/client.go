// Package llm defines the completion client used by the planner and the
// analysis agent. The production implementation speaks gRPC to a completion
// sidecar; MockClient provides deterministic output for mock mode and tests.
package llm

import "context"

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of an LLM conversation.
type Message struct {
	Role    Role
	Content string
}

// Request carries one completion request.
type Request struct {
	// PlanID correlates completion traffic with the owning workflow.
	PlanID   string
	Messages []Message
}

// StreamChunk is one increment of a streamed completion.
type StreamChunk struct {
	Content string
	IsFinal bool
	Error   string
}

// Client produces completions.
type Client interface {
	// Complete returns the full completion text for the request.
	Complete(ctx context.Context, req *Request) (string, error)

	// CompleteStream streams the completion incrementally. The chunks channel
	// closes when the stream ends; at most one error arrives on errs.
	CompleteStream(ctx context.Context, req *Request) (<-chan StreamChunk, <-chan error)

	// Close releases transport resources.
	Close() error
}

// LastUserMessage returns the content of the most recent user turn, or the
// empty string when the request has none. Mock implementations key scripted
// responses off it.
func LastUserMessage(req *Request) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == RoleUser {
			return req.Messages[i].Content
		}
	}
	return ""
}
