package models

// Status is the availability state of a candidate domain.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAvailable Status = "available"
	StatusTaken     Status = "taken"
)

// StatusOf maps an availability verdict to a Status.
func StatusOf(available bool) Status {
	if available {
		return StatusAvailable
	}
	return StatusTaken
}

// CandidateDomain is one generated name suggestion.
type CandidateDomain struct {
	Name        string `json:"name"`
	Status      Status `json:"status"`
	IsFavorited bool   `json:"is_favorited"`
}

// NewCandidate returns a pending, unfavorited candidate.
func NewCandidate(name string) CandidateDomain {
	return CandidateDomain{Name: name, Status: StatusPending}
}

// Provenance records whether a result came from the model or the mock path.
type Provenance string

const (
	SourcedFromModel Provenance = "real"
	SourcedFromMock  Provenance = "mock"
)
