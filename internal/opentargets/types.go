package opentargets

import "context"

// Kind selects which attribute an association query filters on.
type Kind string

const (
	KindTarget  Kind = "target"
	KindDisease Kind = "disease"
)

// Valid reports whether k is one of the two supported filter kinds.
func (k Kind) Valid() bool {
	return k == KindTarget || k == KindDisease
}

// TargetRef identifies the gene side of an association.
type TargetRef struct {
	ID string `json:"id"`
}

// DiseaseRef identifies the disease side of an association.
type DiseaseRef struct {
	ID string `json:"id"`
}

// AssociationScore carries the scores attached to an association.
// Only the overall score is used here.
type AssociationScore struct {
	Overall float64 `json:"overall"`
}

// Association is one target-disease association as returned by the API.
type Association struct {
	Target  TargetRef        `json:"target"`
	Disease DiseaseRef       `json:"disease"`
	Score   AssociationScore `json:"association_score"`
}

// AssociationAPI filters associations by exactly one named attribute.
// The concrete Client satisfies it; tests substitute a double.
type AssociationAPI interface {
	FilterAssociations(ctx context.Context, kind Kind, value string) ([]Association, error)
}

// filterResponse is one page of the association filter endpoint.
type filterResponse struct {
	Data  []Association `json:"data"`
	Total int           `json:"total"`
	From  int           `json:"from"`
	Size  int           `json:"size"`
}
