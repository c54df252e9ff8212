package dto

import "course-planner/internal/domain"

// AuthURLResponse carries the Google consent URL for the Forms export
type AuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// FormExportRequest exports either the course named by State or the inline
// Form content.
type FormExportRequest struct {
	AccessToken string              `json:"accessToken"`
	State       string              `json:"state,omitempty"`
	Form        *domain.FormContent `json:"form,omitempty"`
}
