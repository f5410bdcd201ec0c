package models

import "encoding/json"

// AuthRequest is the body of the hosted identity sign-up and sign-in calls.
type AuthRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
}

// AuthResponse is returned by a successful sign-up or sign-in.
type AuthResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IDToken     string `json:"idToken"`
}

// Document is a hosted document as returned by reads.
type Document struct {
	ID     string                     `json:"id"`
	Path   string                     `json:"path"`
	Fields map[string]json.RawMessage `json:"fields"`
}

// DocumentList is the response of a collection query.
type DocumentList struct {
	Documents []Document `json:"documents"`
}

// DocumentWrite is the body of a document write.
//
// A merge deep-merges Fields into the stored document. Top-level field
// names listed in UpdateMask are replaced wholesale instead, or removed when
// absent from Fields.
type DocumentWrite struct {
	Fields     map[string]any `json:"fields"`
	UpdateMask []string       `json:"updateMask,omitempty"`
}

// WriteOp is the kind of a batched write.
type WriteOp string

const (
	WriteSet    WriteOp = "set"
	WriteMerge  WriteOp = "merge"
	WriteDelete WriteOp = "delete"
)

// BatchWrite is one write of an atomic batch.
type BatchWrite struct {
	Op         WriteOp        `json:"op"`
	Path       string         `json:"path"`
	Fields     map[string]any `json:"fields,omitempty"`
	UpdateMask []string       `json:"updateMask,omitempty"`
}

// BatchRequest groups writes that are applied all-or-nothing.
type BatchRequest struct {
	Writes []BatchWrite `json:"writes"`
}
