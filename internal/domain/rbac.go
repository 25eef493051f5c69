package domain

// EnforceRequest is the authorization question asked by transport middleware:
// may this subject perform action on resource. Roles are resolved by the
// policy layer from the subject id.
type EnforceRequest struct {
	SubjectID string `json:"subject_id" binding:"required"`
	Resource  string `json:"resource" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
