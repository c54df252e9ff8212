package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"course-planner/internal/cache"
	"course-planner/internal/domain"
	"course-planner/internal/logger"
	"course-planner/internal/metrics"
	"course-planner/internal/util"

	"go.uber.org/zap"
)

const defaultCourseTTL = 10 * time.Minute

// serverFields are assigned by the store and ignored in caller payloads.
var serverFields = []string{"id", "createdAt", "updatedAt"}

// CourseService stores course documents. Returned courses are fresh copies;
// callers may modify them freely.
type CourseService interface {
	List(ctx context.Context) ([]domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	Create(ctx context.Context, data map[string]interface{}) (*domain.Course, error)
	Update(ctx context.Context, id string, data map[string]interface{}) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}

type courseService struct {
	repo    domain.CourseRepository
	tx      domain.TransactionManager
	cache   domain.Cache
	ttl     time.Duration
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewCourseService creates the course store. tx and c may be nil; without a
// transaction manager updates run as plain read-then-write.
func NewCourseService(repo domain.CourseRepository, tx domain.TransactionManager, c domain.Cache, ttl time.Duration, m *metrics.Metrics) CourseService {
	if ttl <= 0 {
		ttl = defaultCourseTTL
	}
	return &courseService{
		repo:    repo,
		tx:      tx,
		cache:   c,
		ttl:     ttl,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// cachedCourse mirrors domain.Course without its flattened JSON form.
type cachedCourse struct {
	ID        string                 `json:"id"`
	Data      map[string]interface{} `json:"data"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

func (s *courseService) List(ctx context.Context) ([]domain.Course, error) {
	rows, err := s.repo.ListCourses(ctx)
	if err != nil {
		logger.Get().Error("Failed to list courses", zap.Error(err))
		return nil, domain.NewStorageError(err)
	}
	courses := make([]domain.Course, 0, len(rows))
	for _, c := range rows {
		courses = append(courses, *c)
	}
	return courses, nil
}

func (s *courseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	key := cache.CourseKey(id)
	if s.cache != nil {
		var cached cachedCourse
		err := cache.GetJSON(ctx, s.cache, key, &cached)
		if err == nil {
			s.metrics.RecordCacheHit("course")
			return &domain.Course{ID: cached.ID, Data: cached.Data, CreatedAt: cached.CreatedAt, UpdatedAt: cached.UpdatedAt}, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Failed to read course from cache", zap.String("course_id", id), zap.Error(err))
		}
		s.metrics.RecordCacheMiss("course")
	}

	course, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		logger.Get().Error("Failed to get course", zap.String("course_id", id), zap.Error(err))
		return nil, domain.NewStorageError(err)
	}
	if course == nil {
		return nil, domain.NewCourseNotFoundError(id)
	}

	s.store(ctx, course)
	return course, nil
}

func (s *courseService) Create(ctx context.Context, data map[string]interface{}) (*domain.Course, error) {
	now := s.now()
	course := &domain.Course{
		ID:        util.NewULID(),
		Data:      payload(nil, data),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateCourse(ctx, course); err != nil {
		logger.Get().Error("Failed to create course", zap.Error(err))
		return nil, domain.NewStorageError(err)
	}
	logger.Get().Info("Course created", zap.String("course_id", course.ID))
	return course, nil
}

// Update merges data into the stored top-level fields; nested objects are
// replaced, not merged.
func (s *courseService) Update(ctx context.Context, id string, data map[string]interface{}) (*domain.Course, error) {
	var updated *domain.Course
	apply := func(ctx context.Context) error {
		current, err := s.repo.GetCourseForUpdate(ctx, id)
		if err != nil {
			return domain.NewStorageError(err)
		}
		if current == nil {
			return domain.NewCourseNotFoundError(id)
		}

		next := &domain.Course{
			ID:        current.ID,
			Data:      payload(current.Data, data),
			CreatedAt: current.CreatedAt,
			UpdatedAt: s.now(),
		}
		if err := s.repo.UpdateCourse(ctx, next); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewCourseNotFoundError(id)
			}
			return domain.NewStorageError(err)
		}
		updated = next
		return nil
	}

	var err error
	if s.tx != nil {
		err = s.tx.WithTransaction(ctx, apply)
	} else {
		err = apply(ctx)
	}
	if err != nil {
		return nil, s.storeError("Failed to update course", id, err)
	}

	s.invalidate(ctx, id)
	return updated, nil
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteCourse(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewCourseNotFoundError(id)
		}
		return s.storeError("Failed to delete course", id, domain.NewStorageError(err))
	}
	s.invalidate(ctx, id)
	logger.Get().Info("Course deleted", zap.String("course_id", id))
	return nil
}

// storeError logs unexpected failures and makes sure callers always get a
// DomainError.
func (s *courseService) storeError(msg, id string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Code != domain.CodeCourseNotFound {
			logger.Get().Error(msg, zap.String("course_id", id), zap.Error(err))
		}
		return domainErr
	}
	logger.Get().Error(msg, zap.String("course_id", id), zap.Error(err))
	return domain.NewStorageError(err)
}

func (s *courseService) store(ctx context.Context, c *domain.Course) {
	if s.cache == nil {
		return
	}
	entry := cachedCourse{ID: c.ID, Data: c.Data, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
	if err := cache.SetJSON(ctx, s.cache, cache.CourseKey(c.ID), entry, s.ttl); err != nil {
		logger.Get().Warn("Failed to cache course", zap.String("course_id", c.ID), zap.Error(err))
	}
}

func (s *courseService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.CourseKey(id)); err != nil {
		logger.Get().Warn("Failed to invalidate course cache", zap.String("course_id", id), zap.Error(err))
	}
}

// payload returns a new map holding base overlaid with patch, minus the
// server-assigned fields.
func payload(base, patch map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	for _, f := range serverFields {
		delete(out, f)
	}
	return out
}
