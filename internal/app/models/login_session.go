package models

import "time"

// LoginSession is a best-effort record of one student portal visit, kept for
// operational visibility only. It is not a security session token.
type LoginSession struct {
	ID                int64      `json:"id" db:"id"`
	PublicID          string     `json:"publicId" db:"public_id"`
	StudentName       string     `json:"studentName" db:"student_name"`
	StudentClass      string     `json:"studentClass" db:"student_class"`
	StudentEmail      string     `json:"studentEmail" db:"student_email"`
	LoginTime         time.Time  `json:"loginTime" db:"login_time"`
	LogoutTime        *time.Time `json:"logoutTime,omitempty" db:"logout_time"`
	SessionDuration   *int       `json:"sessionDuration,omitempty" db:"session_duration"`
	IPAddress         string     `json:"ipAddress" db:"ip_address"`
	UserAgent         string     `json:"userAgent" db:"user_agent"`
	BrowserInfo       string     `json:"browserInfo" db:"browser_info"`
	DeviceType        string     `json:"deviceType" db:"device_type"`
	IsActive          bool       `json:"isActive" db:"is_active"`
	AccessedFeatures  []string   `json:"accessedFeatures" db:"accessed_features"`
	AssignmentsViewed []string   `json:"assignmentsViewed" db:"assignments_viewed"`
	SubmissionsMade   []string   `json:"submissionsMade" db:"submissions_made"`
	TotalTimeSpent    *int       `json:"totalTimeSpent,omitempty" db:"total_time_spent"`
	LastActivity      *time.Time `json:"lastActivity,omitempty" db:"last_activity"`
}
