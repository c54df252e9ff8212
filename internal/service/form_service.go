package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-planner/internal/adapter/forms"
	"course-planner/internal/config"
	"course-planner/internal/domain"
	"course-planner/internal/logger"
	"course-planner/internal/metrics"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	googleAuthURL   = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultStateTTL = 15 * time.Minute
)

var (
	// ErrOAuthNotConfigured is returned when no Google client id is set.
	ErrOAuthNotConfigured = errors.New("google oauth client is not configured")
	// ErrInvalidState is wrapped by every state verification failure.
	ErrInvalidState = errors.New("invalid oauth state")
)

// FormService exports courses as Google Forms registration forms.
type FormService interface {
	AuthURL(courseID string) (url string, state string, err error)
	ParseState(state string) (string, error)
	Export(ctx context.Context, accessToken string, content domain.FormContent) domain.Result[domain.FormLink]
	ExportCourse(ctx context.Context, accessToken, state string) domain.Result[domain.FormLink]
}

type stateClaims struct {
	CourseID string `json:"course_id"`
	jwt.RegisteredClaims
}

type formService struct {
	publisher    domain.FormPublisher
	courses      CourseService
	oauth2Config *oauth2.Config
	secret       []byte
	stateTTL     time.Duration
	metrics      *metrics.Metrics
	now          func() time.Time
}

// NewFormService creates the exporter. The consent URL uses the implicit
// grant, so the browser receives the access token directly.
func NewFormService(publisher domain.FormPublisher, courses CourseService, googleCfg config.GoogleConfig, formsCfg config.FormsConfig, m *metrics.Metrics) FormService {
	ttl := formsCfg.StateTTL
	if ttl <= 0 {
		ttl = defaultStateTTL
	}
	return &formService{
		publisher: publisher,
		courses:   courses,
		oauth2Config: &oauth2.Config{
			ClientID:    googleCfg.ClientID,
			RedirectURL: googleCfg.RedirectURI,
			Scopes:      forms.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  googleAuthURL,
				TokenURL: google.Endpoint.TokenURL,
			},
		},
		secret:   []byte(formsCfg.StateSecret),
		stateTTL: ttl,
		metrics:  m,
		now:      time.Now,
	}
}

// AuthURL returns the consent URL and the signed state naming courseID.
func (s *formService) AuthURL(courseID string) (string, string, error) {
	if s.oauth2Config.ClientID == "" {
		return "", "", ErrOAuthNotConfigured
	}
	state, err := s.signState(courseID)
	if err != nil {
		return "", "", err
	}
	url := s.oauth2Config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("response_type", "token"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
	return url, state, nil
}

func (s *formService) signState(courseID string) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("forms state secret is not configured")
	}
	now := s.now()
	claims := stateClaims{
		CourseID: courseID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.stateTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   courseID,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseState verifies a state issued by AuthURL and returns its course id.
func (s *formService) ParseState(state string) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("%w: secret is not configured", ErrInvalidState)
	}
	token, err := jwt.ParseWithClaims(state, &stateClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	claims, ok := token.Claims.(*stateClaims)
	if !ok || !token.Valid || claims.CourseID == "" {
		return "", ErrInvalidState
	}
	return claims.CourseID, nil
}

func (s *formService) Export(ctx context.Context, accessToken string, content domain.FormContent) domain.Result[domain.FormLink] {
	link, err := s.publisher.CreateForm(ctx, accessToken, content)
	if err != nil {
		msg := forms.ErrorMessage(err)
		logger.Get().Error("Failed to export registration form",
			zap.String("class_name", content.ClassName),
			zap.Error(err))
		s.metrics.RecordFormExport("error")
		return domain.Fail[domain.FormLink](msg)
	}

	logger.Get().Info("Registration form created",
		zap.String("form_id", link.FormID),
		zap.String("class_name", content.ClassName))
	s.metrics.RecordFormExport("success")
	return domain.Ok(link)
}

// ExportCourse exports the stored course named by state.
func (s *formService) ExportCourse(ctx context.Context, accessToken, state string) domain.Result[domain.FormLink] {
	courseID, err := s.ParseState(state)
	if err != nil {
		logger.Get().Warn("Rejected form export state", zap.Error(err))
		return domain.Fail[domain.FormLink](domain.NewInvalidStateError(err).Message)
	}

	course, err := s.courses.Get(ctx, courseID)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return domain.Fail[domain.FormLink](domainErr.Message)
		}
		return domain.Fail[domain.FormLink](err.Error())
	}

	var content domain.FormContent
	if err := course.Decode(&content); err != nil {
		return domain.Fail[domain.FormLink](fmt.Sprintf("課程資料格式錯誤: %v", err))
	}
	if content.ClassName == "" {
		return domain.Fail[domain.FormLink]("課程缺少班級名稱")
	}
	return s.Export(ctx, accessToken, content)
}
