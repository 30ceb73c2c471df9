package dto

// GradeSubmissionRequest is the admin grading payload.
type GradeSubmissionRequest struct {
	Grade    int    `json:"grade" binding:"min=0,max=100"`
	Feedback string `json:"feedback"`
}

// UpdateSubmissionStatusRequest moves a submission through
// submitted -> graded -> returned.
type UpdateSubmissionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=submitted graded returned"`
}
