package api

// CreateChatSessionBody is the request body for POST /api/chat/sessions.
// The owner comes from the X-User-ID header; an empty title gets the
// store's default.
type CreateChatSessionBody struct {
	Title string `json:"title,omitempty"`
}
