package company

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Company) error
	FindAll(ctx context.Context) ([]Company, error)
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

func (r *repository) Create(ctx context.Context, c *Company) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.conn(ctx).Find(&companies).Error
	return companies, err
}
