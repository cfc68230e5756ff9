package services

import (
	"context"
	"fmt"
	"time"

	"inventory-backend/models"
	"inventory-backend/store"
	"inventory-backend/utils"

	"github.com/google/uuid"
)

// StatusService records client health pings.
type StatusService struct {
	records[models.StatusCheck]
	now func() time.Time
}

func NewStatusService(checks store.Collection[models.StatusCheck]) *StatusService {
	return &StatusService{
		records: records[models.StatusCheck]{coll: checks, entity: "Status check"},
		now:     time.Now,
	}
}

func (s *StatusService) Create(ctx context.Context, input models.StatusCheckCreate) (*models.StatusCheck, error) {
	check := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: input.ClientName,
		Timestamp:  utils.Timestamp(s.now()),
	}
	if err := s.coll.InsertOne(ctx, &check); err != nil {
		return nil, fmt.Errorf("create status check: %w", err)
	}
	return &check, nil
}

func (s *StatusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	return s.list(ctx)
}
