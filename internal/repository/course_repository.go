package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"course-planner/internal/domain"
	"course-planner/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const courseColumns = `ID, DATA, CREATED_AT, UPDATED_AT`

// CourseDatabaseAdapter implements domain.CourseRepository on Oracle.
type CourseDatabaseAdapter struct {
	db DBTX
}

var _ domain.CourseRepository = (*CourseDatabaseAdapter)(nil)

// NewCourseDatabaseAdapter creates a repository over db. Calls made with a
// context from TransactionManagerAdapter run inside that transaction.
func NewCourseDatabaseAdapter(db *sqlx.DB) *CourseDatabaseAdapter {
	return &CourseDatabaseAdapter{db: db}
}

func (a *CourseDatabaseAdapter) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	var rows []models.Course
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY CREATED_AT DESC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]*domain.Course, 0, len(rows))
	for i := range rows {
		courses = append(courses, toDomainCourse(&rows[i]))
	}
	return courses, nil
}

func (a *CourseDatabaseAdapter) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	return a.getCourse(ctx, `SELECT `+courseColumns+` FROM courses WHERE ID = :id`, id)
}

// GetCourseForUpdate locks the row until the surrounding transaction ends.
func (a *CourseDatabaseAdapter) GetCourseForUpdate(ctx context.Context, id string) (*domain.Course, error) {
	return a.getCourse(ctx, `SELECT `+courseColumns+` FROM courses WHERE ID = :id FOR UPDATE`, id)
}

func (a *CourseDatabaseAdapter) getCourse(ctx context.Context, query, id string) (*domain.Course, error) {
	ex := GetExecutor(ctx, a.db)
	q, args, err := sqlx.Named(query, map[string]interface{}{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to bind course query: %w", err)
	}

	var row models.Course
	if err := ex.GetContext(ctx, &row, ex.Rebind(q), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}
	return toDomainCourse(&row), nil
}

func (a *CourseDatabaseAdapter) CreateCourse(ctx context.Context, course *domain.Course) error {
	query := `INSERT INTO courses (ID, DATA, CREATED_AT, UPDATED_AT)
	          VALUES (:ID, :DATA, :CREATED_AT, :UPDATED_AT)`

	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, fromDomainCourse(course)); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (a *CourseDatabaseAdapter) UpdateCourse(ctx context.Context, course *domain.Course) error {
	query := `UPDATE courses SET DATA = :DATA, UPDATED_AT = :UPDATED_AT WHERE ID = :ID`

	result, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, fromDomainCourse(course))
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	return requireRow(result)
}

func (a *CourseDatabaseAdapter) DeleteCourse(ctx context.Context, id string) error {
	query := `DELETE FROM courses WHERE ID = :id`

	result, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func toDomainCourse(m *models.Course) *domain.Course {
	if m == nil {
		return nil
	}
	data := make(map[string]interface{}, len(m.Data))
	for k, v := range m.Data {
		data[k] = v
	}
	return &domain.Course{
		ID:        m.ID,
		Data:      data,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromDomainCourse(c *domain.Course) *models.Course {
	if c == nil {
		return nil
	}
	return &models.Course{
		ID:        c.ID,
		Data:      models.JSONDocument(c.Data),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
