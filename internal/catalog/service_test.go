package catalog

import (
	"errors"
	"testing"

	internalErrors "github.com/techmart/storefront/internal/errors"
	"github.com/techmart/storefront/model"
	"github.com/techmart/storefront/store"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	dataDir := t.TempDir()
	service, err := NewService(store.NewProductStore(), dataDir)
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return service, dataDir
}

func TestNewService(t *testing.T) {
	if _, err := NewService(nil, ""); err == nil {
		t.Error("NewService(nil, ...) should return an error")
	}

	// Empty data dir disables persistence but is otherwise valid.
	if _, err := NewService(store.NewProductStore(), ""); err != nil {
		t.Errorf("NewService with empty data dir returned error: %v", err)
	}
}

func TestCreateProduct(t *testing.T) {
	service, _ := newTestService(t)

	t.Run("assigns an ID and normalizes collections", func(t *testing.T) {
		created, err := service.CreateProduct(model.Product{
			Name:     "Pro Wireless Headphones",
			Category: model.CategoryHeadsets,
			Price:    299.99,
		})
		if err != nil {
			t.Fatalf("CreateProduct returned error: %v", err)
		}
		if created.ID == "" {
			t.Error("created product should have an assigned ID")
		}
		if created.Features == nil || created.UseCases == nil || created.Specs.Details == nil {
			t.Error("created product should have non-nil Features, UseCases, and Specs.Details")
		}

		fetched, err := service.GetProduct(created.ID)
		if err != nil {
			t.Fatalf("GetProduct returned error: %v", err)
		}
		if fetched.Name != "Pro Wireless Headphones" {
			t.Errorf("fetched Name = %q, want Pro Wireless Headphones", fetched.Name)
		}
	})

	t.Run("keeps a caller provided ID", func(t *testing.T) {
		created, err := service.CreateProduct(model.Product{
			ID:       "fixed-id",
			Name:     "PowerBank 20000",
			Category: model.CategoryAccessories,
			Price:    49.99,
		})
		if err != nil {
			t.Fatalf("CreateProduct returned error: %v", err)
		}
		if created.ID != "fixed-id" {
			t.Errorf("created ID = %q, want fixed-id", created.ID)
		}
	})

	t.Run("rejects invalid products", func(t *testing.T) {
		testCases := []struct {
			name        string
			product     model.Product
			expectedErr error
		}{
			{
				name:        "missing name",
				product:     model.Product{Category: model.CategoryPhones, Price: 10},
				expectedErr: internalErrors.ErrInvalidInput,
			},
			{
				name:        "unknown category",
				product:     model.Product{Name: "Chair", Category: "furniture", Price: 10},
				expectedErr: internalErrors.ErrInvalidCategory,
			},
			{
				name:        "negative price",
				product:     model.Product{Name: "Keyboard", Category: model.CategoryAccessories, Price: -1},
				expectedErr: internalErrors.ErrInvalidInput,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := service.CreateProduct(tc.product)
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("CreateProduct error = %v, want %v", err, tc.expectedErr)
				}
			})
		}
	})
}

func TestListProducts(t *testing.T) {
	service, _ := newTestService(t)

	mustCreate := func(name string, category model.Category, price float64) {
		t.Helper()
		if _, err := service.CreateProduct(model.Product{Name: name, Category: category, Price: price}); err != nil {
			t.Fatalf("failed to create %q: %v", name, err)
		}
	}
	mustCreate("Pro Wireless Headphones", model.CategoryHeadsets, 299.99)
	mustCreate("UltraBook X1", model.CategoryComputers, 1299.99)
	mustCreate("MechKeys Elite", model.CategoryAccessories, 129.99)

	all, err := service.ListProducts("")
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListProducts(\"\") returned %d products, want 3", len(all))
	}

	computers, err := service.ListProducts(model.CategoryComputers)
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(computers) != 1 || computers[0].Name != "UltraBook X1" {
		t.Errorf("ListProducts(computers) = %v, want [UltraBook X1]", computers)
	}

	if _, err := service.ListProducts("furniture"); !errors.Is(err, internalErrors.ErrInvalidCategory) {
		t.Errorf("ListProducts(furniture) error = %v, want %v", err, internalErrors.ErrInvalidCategory)
	}
}

func TestGetAndDeleteProduct(t *testing.T) {
	service, _ := newTestService(t)

	created, err := service.CreateProduct(model.Product{
		Name:     "Logitech Brio 4K",
		Category: model.CategoryAccessories,
		Price:    199.99,
	})
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}

	if _, err := service.GetProduct("missing"); !errors.Is(err, internalErrors.ErrProductNotFound) {
		t.Errorf("GetProduct(missing) error = %v, want %v", err, internalErrors.ErrProductNotFound)
	}

	if err := service.DeleteProduct(created.ID); err != nil {
		t.Fatalf("DeleteProduct returned error: %v", err)
	}
	if err := service.DeleteProduct(created.ID); !errors.Is(err, internalErrors.ErrProductNotFound) {
		t.Errorf("second DeleteProduct error = %v, want %v", err, internalErrors.ErrProductNotFound)
	}
}

func TestSeedAndPurgeProducts(t *testing.T) {
	service, _ := newTestService(t)

	seedSize := len(SeedProducts())
	count, err := service.SeedProducts()
	if err != nil {
		t.Fatalf("SeedProducts returned error: %v", err)
	}
	if count != seedSize {
		t.Errorf("SeedProducts() = %d, want %d", count, seedSize)
	}

	all, err := service.ListProducts("")
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(all) != seedSize {
		t.Errorf("catalog holds %d products after seed, want %d", len(all), seedSize)
	}
	for _, p := range all {
		if p.ID == "" {
			t.Errorf("seeded product %q has no ID", p.Name)
		}
	}

	// Seeding again inserts fresh copies, matching insert-many semantics.
	if _, err := service.SeedProducts(); err != nil {
		t.Fatalf("second SeedProducts returned error: %v", err)
	}
	all, _ = service.ListProducts("")
	if len(all) != 2*seedSize {
		t.Errorf("catalog holds %d products after double seed, want %d", len(all), 2*seedSize)
	}

	purged, err := service.PurgeProducts()
	if err != nil {
		t.Fatalf("PurgeProducts returned error: %v", err)
	}
	if purged != 2*seedSize {
		t.Errorf("PurgeProducts() = %d, want %d", purged, 2*seedSize)
	}
	all, _ = service.ListProducts("")
	if len(all) != 0 {
		t.Errorf("catalog holds %d products after purge, want 0", len(all))
	}
}

func TestSeedDataset(t *testing.T) {
	seeded := SeedProducts()
	if len(seeded) != 19 {
		t.Fatalf("seed dataset has %d products, want 19", len(seeded))
	}

	counts := make(map[model.Category]int)
	for _, p := range seeded {
		if !model.IsValidCategory(p.Category) {
			t.Errorf("seed product %q has invalid category %q", p.Name, p.Category)
		}
		if p.Price <= 0 {
			t.Errorf("seed product %q has non-positive price %v", p.Name, p.Price)
		}
		counts[p.Category]++
	}

	for _, category := range model.ValidCategories {
		if counts[category] == 0 {
			t.Errorf("seed dataset has no %s products", category)
		}
	}
}

func TestPersistenceAcrossRestarts(t *testing.T) {
	dataDir := t.TempDir()

	first, err := NewService(store.NewProductStore(), dataDir)
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	created, err := first.CreateProduct(model.Product{
		Name:     "Anker PowerCore III Elite",
		Category: model.CategoryAccessories,
		Price:    159.99,
	})
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}

	// A second service over the same directory sees the persisted product.
	second, err := NewService(store.NewProductStore(), dataDir)
	if err != nil {
		t.Fatalf("NewService over existing data returned error: %v", err)
	}
	restored, err := second.GetProduct(created.ID)
	if err != nil {
		t.Fatalf("GetProduct after restart returned error: %v", err)
	}
	if restored.Name != "Anker PowerCore III Elite" {
		t.Errorf("restored Name = %q, want Anker PowerCore III Elite", restored.Name)
	}
}
