package models

// ApprovalRequest is the body of POST /api/approvals. UserID comes from the
// X-User-ID header.
type ApprovalRequest struct {
	ThreadID string `json:"thread_id"`
	Approved bool   `json:"approved"`
}

// ApprovalResult reports the outcome of one approve/reject action.
type ApprovalResult struct {
	ThreadID      string   `json:"thread_id"`
	SessionIDs    []string `json:"session_ids"`
	ApprovedBy    []string `json:"approved_by"`
	AllApproved   bool     `json:"all_approved"`
	Finalized     bool     `json:"finalized"`
	FailedWriters []string `json:"failed_writers,omitempty"`
	ResponseText  string   `json:"response_text"`
}
