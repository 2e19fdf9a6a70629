package models

// ProfileType discriminates the three profile variants.
type ProfileType string

const (
	ProfileTypeStudent    ProfileType = "student"
	ProfileTypeResearcher ProfileType = "researcher"
	ProfileTypeAgency     ProfileType = "agency"
)

// Valid reports whether t is one of the known profile types.
func (t ProfileType) Valid() bool {
	switch t {
	case ProfileTypeStudent, ProfileTypeResearcher, ProfileTypeAgency:
		return true
	}
	return false
}

// Role is an account-level role stored in user_roles.
type Role string

const (
	RoleAdmin Role = "admin"
)

// CollaborationStatus is the state of a connection request.
type CollaborationStatus string

const (
	CollaborationPending  CollaborationStatus = "pending"
	CollaborationAccepted CollaborationStatus = "accepted"
	CollaborationDeclined CollaborationStatus = "declined"
)

// QuestionStatus is the lifecycle state of a research question.
type QuestionStatus string

const (
	QuestionOpen       QuestionStatus = "open"
	QuestionInProgress QuestionStatus = "in_progress"
	QuestionCompleted  QuestionStatus = "completed"
	QuestionClosed     QuestionStatus = "closed"
)

// Valid reports whether s is a known research question status.
func (s QuestionStatus) Valid() bool {
	switch s {
	case QuestionOpen, QuestionInProgress, QuestionCompleted, QuestionClosed:
		return true
	}
	return false
}

// ResourceType classifies library resources.
type ResourceType string

const (
	ResourceWorkshop ResourceType = "workshop"
	ResourceToolkit  ResourceType = "toolkit"
	ResourceReading  ResourceType = "reading"
)

// ResourceFormat is the delivery format of a resource.
type ResourceFormat string

const (
	FormatPDF     ResourceFormat = "pdf"
	FormatVideo   ResourceFormat = "video"
	FormatWebinar ResourceFormat = "webinar"
	FormatArticle ResourceFormat = "article"
	FormatLink    ResourceFormat = "link"
)

// SubmissionStatus is the review state of a research submission.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)
