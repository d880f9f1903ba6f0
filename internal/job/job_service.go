package job

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	joberrors "github.com/mexanik619/College-Placement-Website/internal/job/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const JobOptionsKey = "jobs:options"

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	Post(ctx context.Context, req PostJobRequest) (JobResponse, error)
	GetAll(ctx context.Context) ([]JobResponse, error)
	GetOptions(ctx context.Context) ([]JobOptionResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Post(ctx context.Context, req PostJobRequest) (JobResponse, error) {
	s.logger.Debug("post job requested",
		zap.Uint("company_id", req.CompanyID),
		zap.String("title", req.Title),
	)

	if req.CompanyID == 0 ||
		strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.SalaryPackage) == "" {
		s.logger.Warn("post job validation failed", zap.Uint("company_id", req.CompanyID))
		return JobResponse{}, joberrors.ErrMissingRequiredFields
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("post job begin tx failed", zap.Error(err))
		return JobResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	posting := &JobPosting{
		CompanyID:     req.CompanyID,
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		SalaryPackage: strings.TrimSpace(req.SalaryPackage),
		PostingDate:   time.Now().UTC().Truncate(24 * time.Hour),
	}

	if err := qtx.Create(ctx, posting); err != nil {
		s.logger.Error("post job persist failed", zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("post job commit failed", zap.Error(err))
		return JobResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, JobOptionsKey).Err(); err != nil {
			s.logger.Error("failed to invalidate job options cache",
				zap.Error(err),
				zap.String("key", JobOptionsKey),
			)
		}
	}

	s.logger.Info("post job success",
		zap.Uint("job_id", posting.ID),
		zap.Uint("company_id", posting.CompanyID),
	)

	return mapToResponse(*posting), nil
}

func (s *service) GetAll(ctx context.Context) ([]JobResponse, error) {
	jobs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all jobs failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(jobs), nil
}

func (s *service) GetOptions(ctx context.Context) ([]JobOptionResponse, error) {
	// 1. Try Redis first
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, JobOptionsKey).Result(); err == nil {
			var resp []JobOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight collapses the stampede when the portal page loads
	v, err, _ := s.sf.Do(JobOptionsKey, func() (interface{}, error) {
		jobs, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]JobOptionResponse, len(jobs))
		for i, j := range jobs {
			resp[i] = JobOptionResponse{JobID: j.ID, Title: j.Title}
		}

		// 3. Postings are append-only, so a long TTL is safe; Post
		// invalidates on write anyway.
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, JobOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]JobOptionResponse), nil
}

func mapToResponse(j JobPosting) JobResponse {
	return JobResponse{
		JobID:         j.ID,
		CompanyID:     j.CompanyID,
		Title:         j.Title,
		Description:   j.Description,
		SalaryPackage: j.SalaryPackage,
		PostingDate:   j.PostingDate.Format("2006-01-02"),
	}
}

func mapToListResponse(jobs []JobPosting) []JobResponse {
	resp := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		resp[i] = mapToResponse(j)
	}
	return resp
}
