package application

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// ApplicationDetail is the joined row shape returned by the triage query.
type ApplicationDetail struct {
	ApplicationID   uint
	StudentID       uint
	JobID           uint
	Status          string
	ApplicationDate time.Time
	StudentName     string
	JobTitle        string
}

//go:generate mockgen -source=application_repo.go -destination=mock/application_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Application) error
	FindByID(ctx context.Context, id uint) (*Application, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	FindAllDetails(ctx context.Context) ([]ApplicationDetail, error)
	ExistsByStudentAndJob(ctx context.Context, studentID, jobID uint) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn binds statements to the service's transaction when one was attached
// with WithTx; otherwise they run on the shared pool.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	if r.tx != nil {
		session := r.db.Session(&gorm.Session{Context: ctx, NewDB: true})
		session.Statement.ConnPool = r.tx
		return session
	}
	return r.db.WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, a *Application) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Application, error) {
	var a Application
	err := r.conn(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status string) error {
	res := r.conn(ctx).
		Model(&Application{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindAllDetails(ctx context.Context) ([]ApplicationDetail, error) {
	var details []ApplicationDetail
	err := r.conn(ctx).
		Table("applications AS a").
		Select(`a.id AS application_id,
			a.student_id,
			a.job_id,
			a.status,
			a.application_date,
			s.name AS student_name,
			j.title AS job_title`).
		Joins("JOIN students s ON s.id = a.student_id").
		Joins("JOIN job_postings j ON j.id = a.job_id").
		Order("a.application_date DESC, a.id ASC").
		Scan(&details).Error
	return details, err
}

func (r *repository) ExistsByStudentAndJob(ctx context.Context, studentID, jobID uint) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Application{}).
		Where("student_id = ?", studentID).
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count > 0, err
}
