package application

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	applicationerrors "github.com/mexanik619/College-Placement-Website/internal/application/errors"
	"github.com/mexanik619/College-Placement-Website/internal/events"
	"github.com/mexanik619/College-Placement-Website/internal/messaging/kafka"
	"github.com/mexanik619/College-Placement-Website/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Config carries the two policy knobs the portal leaves to deployment:
// whether students may re-apply to the same job, and how strictly status
// transitions follow the hiring funnel.
type Config struct {
	TransitionPolicy TransitionPolicy
	AllowReapply     bool
}

func DefaultConfig() Config {
	return Config{
		TransitionPolicy: PolicyFreeForm,
		AllowReapply:     true,
	}
}

//go:generate mockgen -source=application_service.go -destination=mock/application_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateApplicationRequest) (ApplicationResponse, error)
	ListDetails(ctx context.Context) ([]ApplicationDetailResponse, error)
	UpdateStatus(ctx context.Context, id uint, req UpdateStatusRequest) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	cfg    Config
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, cfg Config, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, cfg, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		cfg:    cfg,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateApplicationRequest) (ApplicationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create application requested",
		zap.String("request_id", rid),
		zap.Uint("student_id", req.StudentID),
		zap.Uint("job_id", req.JobID),
	)

	if req.StudentID == 0 || req.JobID == 0 {
		s.logger.Warn("create application validation failed",
			zap.Uint("student_id", req.StudentID),
			zap.Uint("job_id", req.JobID),
		)
		return ApplicationResponse{}, applicationerrors.ErrMissingIDs
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create application begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if !s.cfg.AllowReapply {
		exists, err := qtx.ExistsByStudentAndJob(ctx, req.StudentID, req.JobID)
		if err != nil {
			s.logger.Error("create application duplicate check failed", zap.Error(err))
			return ApplicationResponse{}, err
		}
		if exists {
			s.logger.Warn("create application duplicate rejected",
				zap.Uint("student_id", req.StudentID),
				zap.Uint("job_id", req.JobID),
			)
			return ApplicationResponse{}, applicationerrors.ErrDuplicateApplication
		}
	}

	app := &Application{
		StudentID:       req.StudentID,
		JobID:           req.JobID,
		Status:          StatusPending,
		ApplicationDate: time.Now().UTC().Truncate(24 * time.Hour),
	}

	if err := qtx.Create(ctx, app); err != nil {
		s.logger.Error("create application persist failed", zap.Error(err))
		return ApplicationResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.ApplicationReceivedEvent{
			EventType:     events.EventTypeApplicationReceived,
			RequestID:     rid,
			ApplicationID: app.ID,
			StudentID:     app.StudentID,
			JobID:         app.JobID,
			OccurredAt:    time.Now().UTC(),
		}
		if err := s.enqueueEvent(ctx, tx, app.ID, event.EventType, event); err != nil {
			s.logger.Error("create application outbox persist failed",
				zap.Uint("application_id", app.ID),
				zap.Error(err),
			)
			return ApplicationResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create application commit failed", zap.String("request_id", rid), zap.Error(err))
		return ApplicationResponse{}, err
	}

	s.logger.Info("create application success",
		zap.String("request_id", rid),
		zap.Uint("application_id", app.ID),
		zap.Uint("student_id", app.StudentID),
		zap.Uint("job_id", app.JobID),
	)

	return mapToResponse(*app), nil
}

func (s *service) ListDetails(ctx context.Context) ([]ApplicationDetailResponse, error) {
	details, err := s.repo.FindAllDetails(ctx)
	if err != nil {
		s.logger.Error("list application details failed", zap.Error(err))
		return nil, err
	}
	return mapToDetailListResponse(details), nil
}

func (s *service) UpdateStatus(ctx context.Context, id uint, req UpdateStatusRequest) error {
	rid := contextutil.GetRequestID(ctx)
	targetStatus := strings.TrimSpace(req.Status)
	s.logger.Debug("update application status requested",
		zap.String("request_id", rid),
		zap.Uint("application_id", id),
		zap.String("target_status", targetStatus),
	)

	if targetStatus == "" {
		return applicationerrors.ErrMissingStatus
	}
	if !IsValidStatus(targetStatus) {
		s.logger.Warn("update application status unrecognized",
			zap.Uint("application_id", id),
			zap.String("target_status", targetStatus),
		)
		return applicationerrors.ErrUnknownStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update application status begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	app, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return applicationerrors.ErrApplicationNotFound
		}
		s.logger.Error("update application status fetch failed", zap.Error(err))
		return err
	}

	if !isAllowedStatusTransition(s.cfg.TransitionPolicy, app.Status, targetStatus) {
		s.logger.Warn("update application status transition rejected",
			zap.Uint("application_id", id),
			zap.String("from_status", app.Status),
			zap.String("to_status", targetStatus),
		)
		return applicationerrors.ErrInvalidStatusTransition
	}

	if err := qtx.UpdateStatus(ctx, id, targetStatus); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return applicationerrors.ErrApplicationNotFound
		}
		s.logger.Error("update application status persist failed",
			zap.Uint("application_id", id),
			zap.Error(err),
		)
		return err
	}

	if s.outbox != nil {
		event := events.ApplicationStatusChangedEvent{
			EventType:     events.EventTypeApplicationStatusChanged,
			RequestID:     rid,
			ApplicationID: id,
			FromStatus:    app.Status,
			ToStatus:      targetStatus,
			OccurredAt:    time.Now().UTC(),
		}
		if err := s.enqueueEvent(ctx, tx, id, event.EventType, event); err != nil {
			s.logger.Error("update application status outbox persist failed",
				zap.Uint("application_id", id),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update application status commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("update application status success",
		zap.String("request_id", rid),
		zap.Uint("application_id", id),
		zap.String("status", targetStatus),
	)

	return nil
}

func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, applicationID uint, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "application",
		AggregateID:   strconv.FormatUint(uint64(applicationID), 10),
		EventType:     eventType,
		Topic:         events.ApplicationLifecycleTopic,
		Payload:       data,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID:   a.ID,
		StudentID:       a.StudentID,
		JobID:           a.JobID,
		Status:          a.Status,
		ApplicationDate: a.ApplicationDate.Format("2006-01-02"),
	}
}

func mapToDetailListResponse(details []ApplicationDetail) []ApplicationDetailResponse {
	resp := make([]ApplicationDetailResponse, len(details))
	for i, d := range details {
		resp[i] = ApplicationDetailResponse{
			ApplicationID:   d.ApplicationID,
			StudentID:       d.StudentID,
			JobID:           d.JobID,
			Status:          d.Status,
			ApplicationDate: d.ApplicationDate.Format("2006-01-02"),
			StudentName:     d.StudentName,
			JobTitle:        d.JobTitle,
		}
	}
	return resp
}
