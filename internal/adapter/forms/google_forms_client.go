package forms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"course-planner/internal/domain"
	"course-planner/internal/logger"
	"course-planner/internal/placeholder"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	formsapi "google.golang.org/api/forms/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Scopes requested for the export.
var Scopes = []string{
	formsapi.FormsBodyScope,
	formsapi.FormsResponsesReadonlyScope,
	"https://www.googleapis.com/auth/drive.file",
}

// Grade options offered in the registration form.
var GradeOptions = []string{
	"幼兒園",
	"國小一年級", "國小二年級", "國小三年級", "國小四年級", "國小五年級", "國小六年級",
	"國中一年級", "國中二年級", "國中三年級",
}

// ComputerTimeOptions are the weekly computer-use buckets.
var ComputerTimeOptions = []string{"1小時以下", "1-2小時", "2-3小時", "3-4小時", "4-5小時", "5小時以上"}

// GoogleFormsClient implements domain.FormPublisher with the Forms v1 API.
type GoogleFormsClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewGoogleFormsClient creates a client. endpoint and httpClient may be empty
// to use the public API over the default transport.
func NewGoogleFormsClient(endpoint string, httpClient *http.Client) *GoogleFormsClient {
	return &GoogleFormsClient{endpoint: endpoint, httpClient: httpClient}
}

func (c *GoogleFormsClient) service(ctx context.Context, accessToken string) (*formsapi.Service, error) {
	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	opts := []option.ClientOption{option.WithHTTPClient(oauth2.NewClient(ctx, ts))}
	if c.endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.endpoint))
	}
	return formsapi.NewService(ctx, opts...)
}

// CreateForm creates the form titled after the class and inserts the fixed
// item sequence in one batch update.
func (c *GoogleFormsClient) CreateForm(ctx context.Context, accessToken string, content domain.FormContent) (domain.FormLink, error) {
	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return domain.FormLink{}, fmt.Errorf("failed to create forms service: %w", err)
	}

	form, err := svc.Forms.Create(&formsapi.Form{
		Info: &formsapi.Info{Title: content.ClassName, DocumentTitle: content.ClassName},
	}).Context(ctx).Do()
	if err != nil {
		return domain.FormLink{}, err
	}

	_, err = svc.Forms.BatchUpdate(form.FormId, &formsapi.BatchUpdateFormRequest{
		Requests: BuildRequests(content),
	}).Context(ctx).Do()
	if err != nil {
		logger.Get().Error("Form created but items could not be added",
			zap.String("form_id", form.FormId),
			zap.Error(err),
		)
		return domain.FormLink{}, err
	}

	link := domain.FormLink{
		FormID:    form.FormId,
		FormURL:   fmt.Sprintf("https://docs.google.com/forms/d/%s/edit", form.FormId),
		PublicURL: form.ResponderUri,
	}
	if link.PublicURL == "" {
		link.PublicURL = fmt.Sprintf("https://docs.google.com/forms/d/e/%s/viewform", form.FormId)
	}
	return link, nil
}

// BuildRequests lays out the description block, one image per course day and
// the six required registration questions.
func BuildRequests(content domain.FormContent) []*formsapi.Request {
	items := []*formsapi.Item{{
		Title:       "課程介紹",
		Description: content.Promotion,
		TextItem:    &formsapi.TextItem{},
	}}

	for i, info := range content.Infographics {
		title := fmt.Sprintf("第 %d 天課程", i+1)
		items = append(items, &formsapi.Item{
			Title:     title,
			ImageItem: &formsapi.ImageItem{Image: &formsapi.Image{SourceUri: imageSource(info, title)}},
		})
	}

	items = append(items,
		textQuestion("學生姓名"),
		choiceQuestion("年級選擇", "DROP_DOWN", GradeOptions),
		textQuestion("家長姓名"),
		textQuestion("聯絡電話"),
		textQuestion("Email"),
		choiceQuestion("一週在家使用電腦的時間", "RADIO", ComputerTimeOptions),
	)

	requests := make([]*formsapi.Request, len(items))
	for i, item := range items {
		requests[i] = &formsapi.Request{
			CreateItem: &formsapi.CreateItemRequest{
				Item:     item,
				Location: &formsapi.Location{Index: int64(i), ForceSendFields: []string{"Index"}},
			},
		}
	}
	return requests
}

// imageSource returns a URL the Forms API can fetch. Inline data URIs are not
// accepted there, so those days fall back to their placeholder.
func imageSource(info domain.InfographicResult, title string) string {
	if strings.HasPrefix(info.ImageURL, "https://") || strings.HasPrefix(info.ImageURL, "http://") {
		return info.ImageURL
	}
	return placeholder.URL(info.Style, title)
}

func textQuestion(title string) *formsapi.Item {
	return &formsapi.Item{
		Title: title,
		QuestionItem: &formsapi.QuestionItem{Question: &formsapi.Question{
			Required:     true,
			TextQuestion: &formsapi.TextQuestion{Paragraph: false},
		}},
	}
}

func choiceQuestion(title, kind string, values []string) *formsapi.Item {
	options := make([]*formsapi.Option, len(values))
	for i, v := range values {
		options[i] = &formsapi.Option{Value: v}
	}
	return &formsapi.Item{
		Title: title,
		QuestionItem: &formsapi.QuestionItem{Question: &formsapi.Question{
			Required:       true,
			ChoiceQuestion: &formsapi.ChoiceQuestion{Type: kind, Options: options},
		}},
	}
}

// ErrorMessage prefers the structured message of a Google API error over the
// transport error text.
func ErrorMessage(err error) string {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// Static assertion to ensure GoogleFormsClient implements FormPublisher
var _ domain.FormPublisher = (*GoogleFormsClient)(nil)
