package loom

import "time"

// Resource identifies one of the Loom collection endpoints.
type Resource string

const (
	ResourcePrompts    Resource = "prompts"
	ResourceDatasets   Resource = "datasets"
	ResourceEvaluators Resource = "evaluators"
	ResourceAPIKeys    Resource = "api-keys"
)

// Title returns the human-readable label used in tab headers.
func (r Resource) Title() string {
	switch r {
	case ResourcePrompts:
		return "Prompts"
	case ResourceDatasets:
		return "Datasets"
	case ResourceEvaluators:
		return "Evaluators"
	case ResourceAPIKeys:
		return "API Keys"
	default:
		return string(r)
	}
}

// Record describes a collection entry in transport-friendly form. All four
// resources share this shape; fields that do not apply to a resource are
// simply absent from the payload.
type Record struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     int    `json:"version,omitempty"`
	ItemCount   int    `json:"itemCount,omitempty"`
	Model       string `json:"model,omitempty"`
	Scopes      string `json:"scopes,omitempty"`
	LastUsedAt  string `json:"lastUsedAt,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// NodeID implements collection.Node.
func (r Record) NodeID() string { return r.ID }

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (r Record) ParsedCreatedAt() time.Time {
	return parseTime(r.CreatedAt)
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (r Record) ParsedUpdatedAt() time.Time {
	return parseTime(r.UpdatedAt)
}

// RecordDraft carries the user-supplied fields of a create request.
type RecordDraft struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// pageResponse mirrors the JSON envelope every list endpoint returns.
type pageResponse struct {
	Edges    []edgeEnvelope   `json:"edges"`
	PageInfo pageInfoEnvelope `json:"pageInfo"`
}

type edgeEnvelope struct {
	Cursor string `json:"cursor"`
	Node   Record `json:"node"`
}

type pageInfoEnvelope struct {
	EndCursor   *string `json:"endCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
