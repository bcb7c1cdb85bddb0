package history

import "time"

// Generation statuses.
const (
	StatusGenerated     = "GENERATED"
	StatusPublished     = "PUBLISHED"
	StatusPublishFailed = "PUBLISH_FAILED"
	StatusFailed        = "FAILED"
)

// Generation is one recorded run of the pipeline: what was asked for,
// what survived, and what came out.
type Generation struct {
	ID         string    `json:"id"`
	Restaurant string    `json:"restaurant"`
	Variants   []string  `json:"variants"`
	Status     string    `json:"status"`
	Articles   int       `json:"articles"`
	Dropped    int       `json:"dropped"`
	Unknown    []string  `json:"unknown_categories,omitempty"`
	Documents  []string  `json:"documents"`
	Error      *string   `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
