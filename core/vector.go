package core

import "encoding/json"

// Vector namespaces used by the pipeline.
const (
	NamespaceTechnologies    = "technologies"
	NamespaceJobTitles       = "job-titles"
	NamespaceSkillAverage    = "candidate-skill-average"
	NamespaceFeatureAverage  = "candidate-feature-average"
	NamespaceJobTitleAverage = "candidate-job-title-average"
	NamespaceXBio            = "x-bio"
)

// Vector is an embedding stored under an id inside a namespace.
// Upserting an existing id replaces both values and metadata.
type Vector struct {
	ID       string         `json:"id"`
	Values   []float32      `json:"values"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Match is one ranked result of a similarity query.
type Match struct {
	ID       string         `json:"id"`
	Score    float32        `json:"score"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// VectorRecord is the persisted form of a Vector. Metadata values are
// free-form, so they are kept as one JSON document.
type VectorRecord struct {
	ID       string
	Values   []float32
	Metadata json.RawMessage
}
