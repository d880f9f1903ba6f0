package student_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/mexanik619/College-Placement-Website/internal/student"
	studenterrors "github.com/mexanik619/College-Placement-Website/internal/student/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakeStudentRepository struct {
	withTxFn func(tx *sql.Tx) student.Repository
	createFn func(ctx context.Context, s *student.Student) error
}

func (f *fakeStudentRepository) WithTx(tx *sql.Tx) student.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeStudentRepository) Create(ctx context.Context, s *student.Student) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}

func cgpa(v float64) *float64 { return &v }

func setupStudentServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *fakeStudentRepository, student.Service) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeStudentRepository{}
	return db, sqlMock, repo, student.NewService(db, repo)
}

func TestStudentService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success trims fields and returns the new id", func(t *testing.T) {
		db, sqlMock, repo, svc := setupStudentServiceTest(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.createFn = func(ctx context.Context, s *student.Student) error {
			assert.Equal(t, "Asha", s.Name)
			assert.Equal(t, "asha@college.edu", s.Email)
			assert.Equal(t, 8.4, s.CGPA)
			s.ID = 1
			return nil
		}

		resp, err := svc.Register(ctx, student.RegisterStudentRequest{
			Name:  "  Asha ",
			Email: " asha@college.edu ",
			CGPA:  cgpa(8.4),
		})
		assert.NoError(t, err)
		assert.Equal(t, uint(1), resp.StudentID)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		db, _, _, svc := setupStudentServiceTest(t)
		defer db.Close()

		_, err := svc.Register(ctx, student.RegisterStudentRequest{Name: "   ", Email: "a@b.co", CGPA: cgpa(7)})
		assert.ErrorIs(t, err, studenterrors.ErrMissingRequiredFields)
	})

	t.Run("missing cgpa rejected", func(t *testing.T) {
		db, _, _, svc := setupStudentServiceTest(t)
		defer db.Close()

		_, err := svc.Register(ctx, student.RegisterStudentRequest{Name: "Asha", Email: "a@b.co"})
		assert.ErrorIs(t, err, studenterrors.ErrMissingRequiredFields)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		db, _, _, svc := setupStudentServiceTest(t)
		defer db.Close()

		for _, email := range []string{"not-an-email", "a@b", "a b@c.co", "@c.co"} {
			_, err := svc.Register(ctx, student.RegisterStudentRequest{Name: "Asha", Email: email, CGPA: cgpa(7)})
			assert.ErrorIs(t, err, studenterrors.ErrInvalidEmail, email)
		}
	})

	t.Run("cgpa bounds are inclusive", func(t *testing.T) {
		for _, v := range []float64{0, 10} {
			db, sqlMock, _, svc := setupStudentServiceTest(t)

			sqlMock.ExpectBegin()
			sqlMock.ExpectCommit()

			_, err := svc.Register(ctx, student.RegisterStudentRequest{Name: "Asha", Email: "a@b.co", CGPA: cgpa(v)})
			assert.NoError(t, err, "cgpa %v", v)

			db.Close()
		}

		for _, v := range []float64{-0.01, 10.01} {
			db, _, _, svc := setupStudentServiceTest(t)

			_, err := svc.Register(ctx, student.RegisterStudentRequest{Name: "Asha", Email: "a@b.co", CGPA: cgpa(v)})
			assert.ErrorIs(t, err, studenterrors.ErrCGPAOutOfRange, "cgpa %v", v)

			db.Close()
		}
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		db, sqlMock, repo, svc := setupStudentServiceTest(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.createFn = func(ctx context.Context, s *student.Student) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_student_email"}
		}

		_, err := svc.Register(ctx, student.RegisterStudentRequest{Name: "Asha", Email: "asha@college.edu", CGPA: cgpa(8.4)})
		assert.ErrorIs(t, err, studenterrors.ErrStudentAlreadyExists)
	})

	t.Run("unrelated store failure surfaces", func(t *testing.T) {
		db, sqlMock, repo, svc := setupStudentServiceTest(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.createFn = func(ctx context.Context, s *student.Student) error {
			return errors.New("connection reset")
		}

		_, err := svc.Register(ctx, student.RegisterStudentRequest{Name: "Asha", Email: "asha@college.edu", CGPA: cgpa(8.4)})
		assert.EqualError(t, err, "connection reset")
	})
}
