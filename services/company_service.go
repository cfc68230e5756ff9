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

type CompanyService struct {
	records[models.Company]
	now func() time.Time
}

func NewCompanyService(companies store.Collection[models.Company]) *CompanyService {
	return &CompanyService{
		records: records[models.Company]{coll: companies, entity: "Company"},
		now:     time.Now,
	}
}

func (s *CompanyService) Create(ctx context.Context, input models.CompanyCreate) (*models.Company, error) {
	company := models.Company{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		GSTIN:     input.GSTIN,
		Logo:      input.Logo,
		CreatedAt: utils.Timestamp(s.now()),
	}
	if err := s.coll.InsertOne(ctx, &company); err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return &company, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*models.Company, error) {
	return s.get(ctx, id)
}

func (s *CompanyService) List(ctx context.Context) ([]models.Company, error) {
	return s.list(ctx)
}

// Update never touches createdAt; CompanyUpdate has no such field.
func (s *CompanyService) Update(ctx context.Context, id string, input models.CompanyUpdate) (*models.Company, error) {
	return s.update(ctx, id, input.Changes())
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}
