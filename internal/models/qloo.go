package models

// Qloo entity URNs consumed by this service.
const (
	QlooEntityDestination = "urn:entity:destination"
	QlooEntityPlace       = "urn:entity:place"
)

type QlooSearchHit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type QlooTagHit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// QlooInsight is the slice of a /v2/insights result this service uses: an
// entity plus its affinity score in [0,1]. Advisory input only, never persisted.
type QlooInsight struct {
	Entity struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	} `json:"entity"`
	Affinity struct {
		Score float64 `json:"score"`
	} `json:"affinity"`
}
