package dto

import "github.com/impactlink/impactlink/internal/app/models"

// CreateSubmissionRequest is the multipart form accompanying the uploaded file.
type CreateSubmissionRequest struct {
	Title    string   `form:"title" binding:"required,min=5,max=255"`
	Abstract string   `form:"abstract" binding:"required,min=20,max=10000"`
	Keywords []string `form:"keywords"`
}

// ReviewSubmissionRequest approves or rejects a submission (admin).
type ReviewSubmissionRequest struct {
	Status models.SubmissionStatus `json:"status" binding:"required,oneof=approved rejected"`
	Notes  *string                 `json:"notes" binding:"omitempty,max=5000"`
}

// SubmissionListResponse is a page of submissions.
type SubmissionListResponse struct {
	Submissions []*models.Submission `json:"submissions"`
	Pagination  PaginationInfo       `json:"pagination"`
}

// SubmissionFilter narrows a submission listing.
type SubmissionFilter struct {
	Status   models.SubmissionStatus
	Page     int
	PageSize int
}

// KeywordList normalizes keywords sent as repeated or comma separated fields.
func (r CreateSubmissionRequest) KeywordList() []string {
	return models.NormalizeTags(splitCSV(r.Keywords))
}
