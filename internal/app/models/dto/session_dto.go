package dto

// TrackFeatureRequest records that a session used a named portal feature.
type TrackFeatureRequest struct {
	Feature string `json:"feature" binding:"required"`
}

// SessionFilterRequest narrows admin session listings.
type SessionFilterRequest struct {
	StudentName  string `form:"studentName"`
	StudentEmail string `form:"studentEmail"`
	StudentClass string `form:"studentClass"`
	ActiveOnly   bool   `form:"activeOnly"`
}
