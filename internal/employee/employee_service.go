package employee

import (
	"context"
	"time"

	"github.com/naveen224793-boop/assignment3/internal/events"
	"github.com/naveen224793-boop/assignment3/internal/shared/contextutil"

	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, fields EmployeeFields) (EmployeeResponse, error)
	Update(ctx context.Context, id string, fields EmployeeFields) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) (EmployeeResponse, error)
	Ping(ctx context.Context) error
}

type ServiceOptions struct {
	// Publisher receives lifecycle events after successful writes. Nil
	// disables publishing.
	Publisher EventPublisher
	// ListTimeout bounds GetAll. Zero leaves it to the caller's context.
	ListTimeout time.Duration
}

type service struct {
	repo        Repository
	publisher   EventPublisher
	listTimeout time.Duration
	logger      *zap.Logger
}

func NewService(repo Repository, opts ServiceOptions, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	publisher := opts.Publisher
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{
		repo:        repo,
		publisher:   publisher,
		listTimeout: opts.ListTimeout,
		logger:      l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get all employees requested")

	if s.listTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.listTimeout)
		defer cancel()
	}

	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	log.Debug("get all employees success", zap.Int("count", len(empls)))
	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get employee by id requested", zap.String("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		err = mapRepositoryError(err)
		log.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	return mapToResponse(*empl), nil
}

func (s *service) Create(ctx context.Context, fields EmployeeFields) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create employee requested", zap.String("name", fields.Name))

	empl := &Employee{
		Name:     fields.Name,
		Location: fields.Location,
		Position: fields.Position,
		Salary:   fields.Salary,
	}
	if err := s.repo.Create(ctx, empl); err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.publish(ctx, events.EmployeeCreated, *empl)
	log.Info("create employee success", zap.String("employee_id", empl.ID))

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, fields EmployeeFields) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update employee requested", zap.String("employee_id", id))

	empl, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		err = mapRepositoryError(err)
		log.Warn("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.publish(ctx, events.EmployeeUpdated, *empl)
	log.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete employee requested", zap.String("employee_id", id))

	empl, err := s.repo.Delete(ctx, id)
	if err != nil {
		err = mapRepositoryError(err)
		log.Warn("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.publish(ctx, events.EmployeeDeleted, *empl)
	log.Info("delete employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// publish never fails the request: the write is already durable.
func (s *service) publish(ctx context.Context, eventType string, empl Employee) {
	rid := contextutil.GetRequestID(ctx)
	event := events.EmployeeLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		EmployeeID: empl.ID,
		Snapshot: events.EmployeeSnapshot{
			Name:     empl.Name,
			Location: empl.Location,
			Position: empl.Position,
			Salary:   empl.Salary,
		},
		OccurredAt: time.Now().UTC(),
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.PublishLifecycle(pubCtx, event); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("publish employee lifecycle event failed",
			zap.String("event_type", eventType),
			zap.String("employee_id", empl.ID),
			zap.Error(err),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        empl.ID,
		Name:      empl.Name,
		Location:  empl.Location,
		Position:  empl.Position,
		Salary:    empl.Salary,
		CreatedAt: empl.CreatedAt,
		UpdatedAt: empl.UpdatedAt,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
