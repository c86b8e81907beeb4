package dto

// AgentChatRequest is one user turn of the ops-assistant conversation.
type AgentChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// AgentReply is the assistant's answer. Data carries structured tool output
// when a tool ran; Reply is always present.
type AgentReply struct {
	Reply string      `json:"reply"`
	Tool  string      `json:"tool,omitempty"`
	Data  interface{} `json:"data,omitempty"`
}
