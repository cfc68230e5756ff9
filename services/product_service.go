package services

import (
	"context"
	"fmt"
	"time"

	"inventory-backend/models"
	"inventory-backend/store"
	"inventory-backend/utils"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

const (
	defaultMinStock = 5
	defaultUnit     = "piece"
	defaultGSTRate  = 18
	skuPrefix       = "SKU-"
)

type ProductService struct {
	records[models.Product]
	skus *snowflake.Node
	now  func() time.Time
}

// NewProductService generates SKUs from skuNode, a snowflake node whose ids
// embed the creation time and never repeat within the node.
func NewProductService(products store.Collection[models.Product], skuNode *snowflake.Node) *ProductService {
	return &ProductService{
		records: records[models.Product]{coll: products, entity: "Product"},
		skus:    skuNode,
		now:     time.Now,
	}
}

func (s *ProductService) Create(ctx context.Context, input models.ProductCreate) (*models.Product, error) {
	product := models.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Category:    input.Category,
		Price:       *input.Price,
		Stock:       *input.Stock,
		MinStock:    defaultMinStock,
		Unit:        defaultUnit,
		HSN:         input.HSN,
		GSTRate:     defaultGSTRate,
		Supplier:    input.Supplier,
		LastUpdated: utils.DateStamp(s.now()),
	}
	if input.SKU != nil && *input.SKU != "" {
		product.SKU = *input.SKU
	} else {
		product.SKU = skuPrefix + s.skus.Generate().String()
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.GSTRate != nil {
		product.GSTRate = *input.GSTRate
	}

	if err := s.coll.InsertOne(ctx, &product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.get(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.list(ctx)
}

// Update applies the provided fields and always restamps lastUpdated.
func (s *ProductService) Update(ctx context.Context, id string, input models.ProductUpdate) (*models.Product, error) {
	set := input.Changes()
	set["last_updated"] = utils.DateStamp(s.now())
	return s.update(ctx, id, set)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}
