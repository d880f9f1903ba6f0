package job_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mexanik619/College-Placement-Website/internal/job"
	joberrors "github.com/mexanik619/College-Placement-Website/internal/job/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakeJobRepository struct {
	withTxFn      func(tx *sql.Tx) job.Repository
	createFn      func(ctx context.Context, j *job.JobPosting) error
	findAllFn     func(ctx context.Context) ([]job.JobPosting, error)
	findOptionsFn func(ctx context.Context) ([]job.JobPosting, error)
}

func (f *fakeJobRepository) WithTx(tx *sql.Tx) job.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeJobRepository) Create(ctx context.Context, j *job.JobPosting) error {
	if f.createFn != nil {
		return f.createFn(ctx, j)
	}
	return nil
}

func (f *fakeJobRepository) FindAll(ctx context.Context) ([]job.JobPosting, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeJobRepository) FindOptions(ctx context.Context) ([]job.JobPosting, error) {
	if f.findOptionsFn != nil {
		return f.findOptionsFn(ctx)
	}
	return nil, nil
}

type jobServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	repo      *fakeJobRepository
}

func setupJobServiceTest(t *testing.T) (*jobServiceDeps, job.Service) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	repo := &fakeJobRepository{}
	svc := job.NewService(db, repo, rdb)

	return &jobServiceDeps{db: db, sqlMock: sqlMock, redisMock: redisMock, repo: repo}, svc
}

func TestJobService_Post(t *testing.T) {
	ctx := context.Background()

	t.Run("success dates the posting and invalidates the options cache", func(t *testing.T) {
		deps, svc := setupJobServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel(job.JobOptionsKey).SetVal(1)

		deps.repo.createFn = func(ctx context.Context, j *job.JobPosting) error {
			assert.Equal(t, uint(1), j.CompanyID)
			assert.Equal(t, "SWE", j.Title)
			assert.Equal(t, time.Now().UTC().Format("2006-01-02"), j.PostingDate.Format("2006-01-02"))
			j.ID = 10
			return nil
		}

		resp, err := svc.Post(ctx, job.PostJobRequest{
			CompanyID:     1,
			Title:         " SWE ",
			Description:   "build things",
			SalaryPackage: "12 LPA",
		})
		assert.NoError(t, err)
		assert.Equal(t, uint(10), resp.JobID)
		assert.Equal(t, time.Now().UTC().Format("2006-01-02"), resp.PostingDate)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("missing salary package rejected", func(t *testing.T) {
		deps, svc := setupJobServiceTest(t)
		defer deps.db.Close()

		_, err := svc.Post(ctx, job.PostJobRequest{CompanyID: 1, Title: "SWE", Description: "build"})
		assert.ErrorIs(t, err, joberrors.ErrMissingRequiredFields)
	})

	t.Run("unknown company maps the foreign key violation", func(t *testing.T) {
		deps, svc := setupJobServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.createFn = func(ctx context.Context, j *job.JobPosting) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "fk_job_postings_company"}
		}

		_, err := svc.Post(ctx, job.PostJobRequest{
			CompanyID:     99,
			Title:         "SWE",
			Description:   "build things",
			SalaryPackage: "12 LPA",
		})
		assert.ErrorIs(t, err, joberrors.ErrCompanyNotFound)
	})

	t.Run("cache invalidation failure does not fail the post", func(t *testing.T) {
		deps, svc := setupJobServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel(job.JobOptionsKey).SetErr(errors.New("redis down"))

		_, err := svc.Post(ctx, job.PostJobRequest{
			CompanyID:     1,
			Title:         "SWE",
			Description:   "build things",
			SalaryPackage: "12 LPA",
		})
		assert.NoError(t, err)
	})
}

func TestJobService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the store", func(t *testing.T) {
		deps, svc := setupJobServiceTest(t)
		defer deps.db.Close()

		cached, _ := json.Marshal([]job.JobOptionResponse{{JobID: 10, Title: "SWE"}})
		deps.redisMock.ExpectGet(job.JobOptionsKey).SetVal(string(cached))

		deps.repo.findOptionsFn = func(ctx context.Context) ([]job.JobPosting, error) {
			t.Fatal("store must not be hit on a cache hit")
			return nil, nil
		}

		resp, err := svc.GetOptions(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []job.JobOptionResponse{{JobID: 10, Title: "SWE"}}, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads from the store and backfills", func(t *testing.T) {
		deps, svc := setupJobServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(job.JobOptionsKey).RedisNil()

		deps.repo.findOptionsFn = func(ctx context.Context) ([]job.JobPosting, error) {
			return []job.JobPosting{{ID: 10, Title: "SWE"}, {ID: 11, Title: "Analyst"}}, nil
		}

		expected := []job.JobOptionResponse{{JobID: 10, Title: "SWE"}, {JobID: 11, Title: "Analyst"}}
		payload, _ := json.Marshal(expected)
		deps.redisMock.ExpectSet(job.JobOptionsKey, payload, time.Hour).SetVal("OK")

		resp, err := svc.GetOptions(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("store failure surfaces on a cache miss", func(t *testing.T) {
		deps, svc := setupJobServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(job.JobOptionsKey).RedisNil()

		deps.repo.findOptionsFn = func(ctx context.Context) ([]job.JobPosting, error) {
			return nil, errors.New("relation does not exist")
		}

		_, err := svc.GetOptions(ctx)
		assert.EqualError(t, err, "relation does not exist")
	})
}

func TestJobService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("maps postings with formatted dates", func(t *testing.T) {
		deps, svc := setupJobServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllFn = func(ctx context.Context) ([]job.JobPosting, error) {
			return []job.JobPosting{
				{
					ID:            10,
					CompanyID:     1,
					Title:         "SWE",
					Description:   "build things",
					SalaryPackage: "12 LPA",
					PostingDate:   time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
				},
			}, nil
		}

		resp, err := svc.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "2026-08-10", resp[0].PostingDate)
		assert.Equal(t, "12 LPA", resp[0].SalaryPackage)
	})
}
