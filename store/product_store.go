package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sync"

	"github.com/techmart/storefront/model"
)

// ProductStore is the in-memory document store backing the catalog. Products
// are keyed by their external ID; insertion order is tracked so listings are
// stable across calls.
type ProductStore struct {
	Mu       sync.RWMutex
	Products map[string]model.Product
	Order    []string // product IDs in insertion order
}

// NewProductStore creates an empty ProductStore.
func NewProductStore() *ProductStore {
	return &ProductStore{
		Products: make(map[string]model.Product),
		Order:    make([]string, 0),
	}
}

// List returns products in insertion order. When category is non-empty only
// products of that category are returned. The returned slice is a copy.
func (ps *ProductStore) List(category model.Category) []model.Product {
	ps.Mu.RLock()
	defer ps.Mu.RUnlock()

	products := make([]model.Product, 0, len(ps.Order))
	for _, id := range ps.Order {
		product, ok := ps.Products[id]
		if !ok {
			continue
		}
		if category != "" && product.Category != category {
			continue
		}
		products = append(products, product)
	}
	return products
}

// Get returns the product with the given ID.
func (ps *ProductStore) Get(id string) (model.Product, bool) {
	ps.Mu.RLock()
	defer ps.Mu.RUnlock()

	product, ok := ps.Products[id]
	return product, ok
}

// Put inserts or replaces a product by ID.
func (ps *ProductStore) Put(product model.Product) {
	ps.Mu.Lock()
	defer ps.Mu.Unlock()

	if _, exists := ps.Products[product.ID]; !exists {
		ps.Order = append(ps.Order, product.ID)
	}
	ps.Products[product.ID] = product
}

// Delete removes the product with the given ID and reports whether it
// existed.
func (ps *ProductStore) Delete(id string) bool {
	ps.Mu.Lock()
	defer ps.Mu.Unlock()

	if _, exists := ps.Products[id]; !exists {
		return false
	}
	delete(ps.Products, id)
	for i, orderedID := range ps.Order {
		if orderedID == id {
			ps.Order = append(ps.Order[:i], ps.Order[i+1:]...)
			break
		}
	}
	return true
}

// DeleteAll removes every product and returns how many were removed.
func (ps *ProductStore) DeleteAll() int {
	ps.Mu.Lock()
	defer ps.Mu.Unlock()

	count := len(ps.Products)
	ps.Products = make(map[string]model.Product)
	ps.Order = make([]string, 0)
	return count
}

// Len returns the number of stored products.
func (ps *ProductStore) Len() int {
	ps.Mu.RLock()
	defer ps.Mu.RUnlock()

	return len(ps.Products)
}

// gobProductStoreData is a helper struct for Gob encoding/decoding
// ProductStore data. It excludes the mutex.
type gobProductStoreData struct {
	Products map[string]model.Product
	Order    []string
}

// GobEncode implements the gob.GobEncoder interface for ProductStore.
func (ps *ProductStore) GobEncode() ([]byte, error) {
	ps.Mu.RLock()
	defer ps.Mu.RUnlock()

	dataToEncode := gobProductStoreData{
		Products: ps.Products,
		Order:    ps.Order,
	}

	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(dataToEncode); err != nil {
		return nil, fmt.Errorf("failed to gob encode product store data: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for ProductStore.
func (ps *ProductStore) GobDecode(data []byte) error {
	decodedData := gobProductStoreData{}

	buf := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(buf)
	if err := decoder.Decode(&decodedData); err != nil {
		return fmt.Errorf("failed to gob decode product store data: %w", err)
	}

	ps.Mu.Lock()
	defer ps.Mu.Unlock()

	ps.Products = decodedData.Products
	ps.Order = decodedData.Order

	// Ensure fields are initialized if they were nil after decoding
	if ps.Products == nil {
		ps.Products = make(map[string]model.Product)
	}
	if ps.Order == nil {
		ps.Order = make([]string, 0)
	}

	return nil
}
