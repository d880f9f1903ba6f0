package company

import (
	"context"
	"database/sql"
	"strings"

	companyerrors "github.com/mexanik619/College-Placement-Website/internal/company/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterCompanyRequest) (CompanyResponse, error)
	GetAll(ctx context.Context) ([]CompanyResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterCompanyRequest) (CompanyResponse, error) {
	s.logger.Debug("register company requested",
		zap.String("name", req.Name),
		zap.String("industry", req.Industry),
	)

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Industry) == "" {
		s.logger.Warn("register company validation failed")
		return CompanyResponse{}, companyerrors.ErrMissingRequiredFields
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register company begin tx failed", zap.Error(err))
		return CompanyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	comp := &Company{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Industry:    strings.TrimSpace(req.Industry),
		Description: req.Description,
	}

	if err := qtx.Create(ctx, comp); err != nil {
		s.logger.Error("register company persist failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register company commit failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	s.logger.Info("register company success",
		zap.Uint("company_id", comp.ID),
		zap.String("name", comp.Name),
	)

	return mapToResponse(*comp), nil
}

func (s *service) GetAll(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all companies failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(companies), nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:   c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Industry:    c.Industry,
		Description: c.Description,
	}
}

func mapToListResponse(companies []Company) []CompanyResponse {
	resp := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = mapToResponse(c)
	}
	return resp
}
