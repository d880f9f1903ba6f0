package job

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, j *JobPosting) error
	FindAll(ctx context.Context) ([]JobPosting, error)
	FindOptions(ctx context.Context) ([]JobPosting, error)
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

func (r *repository) Create(ctx context.Context, j *JobPosting) error {
	return r.conn(ctx).Create(j).Error
}

func (r *repository) FindAll(ctx context.Context) ([]JobPosting, error) {
	var jobs []JobPosting
	err := r.conn(ctx).Find(&jobs).Error
	return jobs, err
}

func (r *repository) FindOptions(ctx context.Context) ([]JobPosting, error) {
	var jobs []JobPosting
	err := r.conn(ctx).
		Select("id", "title").
		Order("title ASC").
		Find(&jobs).Error
	return jobs, err
}
