package domain

import "context"

// FormContent is the subset of a course published as a registration form.
type FormContent struct {
	ClassName    string              `json:"className"`
	Promotion    string              `json:"promotion"`
	Infographics []InfographicResult `json:"infographics"`
	Category     Category            `json:"category"`
}

// FormLink identifies a created registration form.
type FormLink struct {
	FormID    string `json:"formId"`
	FormURL   string `json:"formUrl"`
	PublicURL string `json:"publicUrl"`
}

// FormPublisher creates a registration form on behalf of the user owning
// accessToken.
type FormPublisher interface {
	CreateForm(ctx context.Context, accessToken string, content FormContent) (FormLink, error)
}
