package student

import (
	"context"
	"database/sql"
	"regexp"
	"strings"

	studenterrors "github.com/mexanik619/College-Placement-Website/internal/student/errors"

	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

//go:generate mockgen -source=student_service.go -destination=mock/student_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterStudentRequest) (StudentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("student.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("student.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterStudentRequest) (StudentResponse, error) {
	s.logger.Debug("register student requested", zap.String("email", req.Email))

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("register student validation failed", zap.Error(err))
		return StudentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register student begin tx failed", zap.Error(err))
		return StudentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	stud := &Student{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		CGPA:  *req.CGPA,
	}

	if err := qtx.Create(ctx, stud); err != nil {
		s.logger.Error("register student persist failed", zap.Error(err))
		return StudentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register student commit failed", zap.Error(err))
		return StudentResponse{}, err
	}

	s.logger.Info("register student success",
		zap.Uint("student_id", stud.ID),
		zap.String("email", stud.Email),
	)

	return mapToResponse(*stud), nil
}

func validateRegisterRequest(req RegisterStudentRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.CGPA == nil {
		return studenterrors.ErrMissingRequiredFields
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return studenterrors.ErrInvalidEmail
	}
	// Bounds are inclusive: 0 and 10 are both valid grades.
	if *req.CGPA < 0 || *req.CGPA > 10 {
		return studenterrors.ErrCGPAOutOfRange
	}
	return nil
}

func mapToResponse(s Student) StudentResponse {
	return StudentResponse{
		StudentID: s.ID,
		Name:      s.Name,
		Email:     s.Email,
		CGPA:      s.CGPA,
	}
}
