package dto

import "github.com/impactlink/impactlink/internal/app/models"

// ResourceRequest creates or fully replaces a library resource (admin).
type ResourceRequest struct {
	Title        string                `json:"title" binding:"required,min=3,max=255"`
	Description  *string               `json:"description" binding:"omitempty,max=10000"`
	ResourceType models.ResourceType   `json:"resourceType" binding:"required,oneof=workshop toolkit reading"`
	Format       models.ResourceFormat `json:"format" binding:"required,oneof=pdf video webinar article link"`
	Category     *string               `json:"category" binding:"omitempty,max=100"`
	URL          *string               `json:"url" binding:"omitempty,url"`
	Tags         []string              `json:"tags" binding:"omitempty,max=20,dive,max=50"`
}

// ToModel copies the request onto a resource.
func (r ResourceRequest) ToModel() *models.Resource {
	return &models.Resource{
		Title:        r.Title,
		Description:  r.Description,
		ResourceType: r.ResourceType,
		Format:       r.Format,
		Category:     r.Category,
		URL:          r.URL,
		Tags:         models.NormalizeTags(r.Tags),
	}
}

// ResourceQuery binds the library filters.
type ResourceQuery struct {
	Type     string `form:"type" binding:"omitempty,oneof=workshop toolkit reading"`
	Format   string `form:"format" binding:"omitempty,oneof=pdf video webinar article link"`
	Category string `form:"category"`
	Search   string `form:"q"`
}

// ResourceFilter is the normalized filter passed to the store.
type ResourceFilter struct {
	ResourceType models.ResourceType
	Format       models.ResourceFormat
	Category     string
	Search       string
	Page         int
	PageSize     int
}

// ResourceResponse is a resource plus the caller's bookmark flag.
type ResourceResponse struct {
	*models.Resource
	Bookmarked bool `json:"bookmarked"`
}

// ResourceListResponse is a page of resources.
type ResourceListResponse struct {
	Resources  []ResourceResponse `json:"resources"`
	Pagination PaginationInfo     `json:"pagination"`
}

// BookmarkToggleResponse reports the bookmark state after a toggle.
type BookmarkToggleResponse struct {
	Bookmarked bool `json:"bookmarked"`
}
