// Package catalog implements the thin CRUD layer over the product store,
// plus the seed/purge data-management operations for the demo dataset.
package catalog

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	internalErrors "github.com/techmart/storefront/internal/errors"
	"github.com/techmart/storefront/internal/persistence"
	"github.com/techmart/storefront/model"
	"github.com/techmart/storefront/store"
)

const productsFileName = "products.gob"

// Service implements services.CatalogManager over an in-memory ProductStore
// with gob snapshot persistence. A dataDir of "" disables persistence.
type Service struct {
	store   *store.ProductStore
	dataDir string
}

// NewService creates a catalog Service, loading a previously persisted
// snapshot from dataDir when one exists.
func NewService(productStore *store.ProductStore, dataDir string) (*Service, error) {
	if productStore == nil {
		return nil, errors.New("product store cannot be nil")
	}

	service := &Service{store: productStore, dataDir: dataDir}

	if dataDir != "" {
		err := persistence.LoadGob(service.snapshotPath(), productStore)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err == nil {
			log.Printf("Loaded %d products from %s", productStore.Len(), service.snapshotPath())
		}
	}

	return service, nil
}

func (s *Service) snapshotPath() string {
	return filepath.Join(s.dataDir, productsFileName)
}

// ListProducts returns the catalog in insertion order, optionally filtered
// to one category. An empty category means the full catalog.
func (s *Service) ListProducts(category model.Category) ([]model.Product, error) {
	if category != "" && !model.IsValidCategory(category) {
		return nil, internalErrors.NewInvalidCategoryError(string(category))
	}
	return s.store.List(category), nil
}

// GetProduct returns a single product by ID.
func (s *Service) GetProduct(id string) (model.Product, error) {
	product, ok := s.store.Get(id)
	if !ok {
		return model.Product{}, internalErrors.NewProductNotFoundError(id)
	}
	return product, nil
}

// CreateProduct validates and stores a new product, assigning an ID when the
// caller did not provide one. Slices and maps are normalized so stored
// products never carry nil Features, UseCases, or Specs.Details.
func (s *Service) CreateProduct(product model.Product) (model.Product, error) {
	if product.Name == "" {
		return model.Product{}, internalErrors.NewValidationError("name", "name is required")
	}
	if !model.IsValidCategory(product.Category) {
		return model.Product{}, internalErrors.NewInvalidCategoryError(string(product.Category))
	}
	if product.Price < 0 {
		return model.Product{}, internalErrors.NewValidationError("price", "price cannot be negative")
	}

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Features == nil {
		product.Features = []string{}
	}
	if product.UseCases == nil {
		product.UseCases = []string{}
	}
	if product.Specs.Details == nil {
		product.Specs.Details = map[string]string{}
	}

	s.store.Put(product)
	s.persist()
	return product, nil
}

// DeleteProduct removes a product by ID.
func (s *Service) DeleteProduct(id string) error {
	if !s.store.Delete(id) {
		return internalErrors.NewProductNotFoundError(id)
	}
	s.persist()
	return nil
}

// DeleteAllProducts removes every product and returns the removed count.
func (s *Service) DeleteAllProducts() (int, error) {
	count := s.store.DeleteAll()
	s.persist()
	return count, nil
}

// SeedProducts inserts the fixed demo dataset and returns how many products
// were added.
func (s *Service) SeedProducts() (int, error) {
	seeded := SeedProducts()
	for _, product := range seeded {
		if _, err := s.CreateProduct(product); err != nil {
			return 0, err
		}
	}
	log.Printf("Seeded %d products", len(seeded))
	return len(seeded), nil
}

// PurgeProducts removes every product, mirroring the seed operation.
func (s *Service) PurgeProducts() (int, error) {
	count, err := s.DeleteAllProducts()
	if err != nil {
		return 0, err
	}
	log.Printf("Purged %d products", count)
	return count, nil
}

// persist writes a snapshot of the store when persistence is enabled.
func (s *Service) persist() {
	if s.dataDir == "" {
		return
	}
	if err := persistence.SaveGob(s.snapshotPath(), s.store); err != nil {
		log.Printf("Warning: failed to persist product store: %v", err)
	}
}
