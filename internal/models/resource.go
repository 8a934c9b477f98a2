package models

// ResourceTypeNotes is the only resource type produced by the catalog.
const ResourceTypeNotes = "Notes"

// Resource is one entry of the study-resource catalog (resources.json).
type Resource struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Duration string `json:"duration"`
	Type     string `json:"type"`
	URL      string `json:"url"`
}
