package models

// Registration status values. Draft and submitted registrations count as pending
// on the dashboard.
const (
	RegistrationStatusDraft     = "draft"
	RegistrationStatusSubmitted = "submitted"
	RegistrationStatusApproved  = "approved"
	RegistrationStatusRejected  = "rejected"
)

// Registration records an owner's request to list a property. The approval
// workflow itself lives outside this service; the dashboard only reads
// status buckets.
type Registration struct {
	BaseModel

	ApplicantName  string `gorm:"type:varchar(120);not null" json:"applicant_name"`
	ApplicantEmail string `gorm:"type:varchar(200)" json:"applicant_email,omitempty"`

	PropertyID *string   `gorm:"type:uuid;index" json:"property_id,omitempty"`
	Property   *Property `json:"property,omitempty"`

	Status string `gorm:"type:varchar(20);not null;default:draft;index" json:"status"`
}
