package services

import (
	"context"
	"fmt"

	"inventory-backend/models"
	"inventory-backend/store"

	"github.com/google/uuid"
)

type CustomerService struct {
	records[models.Customer]
}

func NewCustomerService(customers store.Collection[models.Customer]) *CustomerService {
	return &CustomerService{records: records[models.Customer]{coll: customers, entity: "Customer"}}
}

// Create stores a new active customer with no outstanding balance.
func (s *CustomerService) Create(ctx context.Context, input models.CustomerCreate) (*models.Customer, error) {
	customer := models.Customer{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		GSTIN:   input.GSTIN,
		Status:  models.StatusActive,
	}
	if err := s.coll.InsertOne(ctx, &customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*models.Customer, error) {
	return s.get(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.list(ctx)
}

func (s *CustomerService) Update(ctx context.Context, id string, input models.CustomerUpdate) (*models.Customer, error) {
	return s.update(ctx, id, input.Changes())
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}
