package company_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/mexanik619/College-Placement-Website/internal/company"
	companyerrors "github.com/mexanik619/College-Placement-Website/internal/company/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakeCompanyRepository struct {
	withTxFn  func(tx *sql.Tx) company.Repository
	createFn  func(ctx context.Context, c *company.Company) error
	findAllFn func(ctx context.Context) ([]company.Company, error)
}

func (f *fakeCompanyRepository) WithTx(tx *sql.Tx) company.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeCompanyRepository) FindAll(ctx context.Context) ([]company.Company, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func setupCompanyServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *fakeCompanyRepository, company.Service) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeCompanyRepository{}
	return db, sqlMock, repo, company.NewService(db, repo)
}

func strptr(s string) *string { return &s }

func TestCompanyService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns the new id", func(t *testing.T) {
		db, sqlMock, repo, svc := setupCompanyServiceTest(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.createFn = func(ctx context.Context, c *company.Company) error {
			assert.Equal(t, "Acme", c.Name)
			assert.Equal(t, "hr@acme.com", c.Email)
			assert.Equal(t, "Software", c.Industry)
			c.ID = 1
			return nil
		}

		resp, err := svc.Register(ctx, company.RegisterCompanyRequest{
			Name:        " Acme ",
			Email:       " hr@acme.com ",
			Industry:    "Software",
			Description: strptr("ships boxes"),
		})
		assert.NoError(t, err)
		assert.Equal(t, uint(1), resp.CompanyID)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("blank industry rejected even when present", func(t *testing.T) {
		db, _, _, svc := setupCompanyServiceTest(t)
		defer db.Close()

		_, err := svc.Register(ctx, company.RegisterCompanyRequest{
			Name:     "Acme",
			Email:    "hr@acme.com",
			Industry: "   ",
		})
		assert.ErrorIs(t, err, companyerrors.ErrMissingRequiredFields)
	})

	t.Run("description stays optional", func(t *testing.T) {
		db, sqlMock, repo, svc := setupCompanyServiceTest(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.createFn = func(ctx context.Context, c *company.Company) error {
			assert.Nil(t, c.Description)
			c.ID = 2
			return nil
		}

		resp, err := svc.Register(ctx, company.RegisterCompanyRequest{
			Name:     "Acme",
			Email:    "hr@acme.com",
			Industry: "Software",
		})
		assert.NoError(t, err)
		assert.Equal(t, uint(2), resp.CompanyID)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		db, sqlMock, repo, svc := setupCompanyServiceTest(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.createFn = func(ctx context.Context, c *company.Company) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_company_email"}
		}

		_, err := svc.Register(ctx, company.RegisterCompanyRequest{
			Name:     "Acme",
			Email:    "hr@acme.com",
			Industry: "Software",
		})
		assert.ErrorIs(t, err, companyerrors.ErrCompanyAlreadyExists)
	})
}

func TestCompanyService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("maps entities to responses", func(t *testing.T) {
		db, _, repo, svc := setupCompanyServiceTest(t)
		defer db.Close()

		repo.findAllFn = func(ctx context.Context) ([]company.Company, error) {
			return []company.Company{
				{ID: 1, Name: "Acme", Email: "hr@acme.com", Industry: "Software"},
				{ID: 2, Name: "Globex", Email: "jobs@globex.com", Industry: "Energy", Description: strptr("power plants")},
			}, nil
		}

		resp, err := svc.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, uint(1), resp[0].CompanyID)
		assert.Equal(t, "Globex", resp[1].Name)
		assert.Equal(t, "power plants", *resp[1].Description)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		db, _, repo, svc := setupCompanyServiceTest(t)
		defer db.Close()

		repo.findAllFn = func(ctx context.Context) ([]company.Company, error) {
			return nil, errors.New("relation does not exist")
		}

		_, err := svc.GetAll(ctx)
		assert.EqualError(t, err, "relation does not exist")
	})
}
