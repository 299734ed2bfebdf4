package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"golang.org/x/sync/singleflight"
)

const catalogLoadTimeout = 10 * time.Second

// CatalogSnapshot is what the listing screen renders. Products may be empty
// while Loading is true.
type CatalogSnapshot struct {
	Products []entities.Product
	Loading  bool
	Error    string
}

// ICatalogStore is shared by every checkout session.
//
//go:generate mockgen -source=catalog_store.go -destination=../adapter/http/handlers/mocks/catalog_store_mock.go -package=mocks
type ICatalogStore interface {
	Snapshot() CatalogSnapshot
	ListProducts() []entities.Product
	GetProduct(id string) (entities.Product, bool)
	DecrementStock(ctx context.Context, id string)
	Load(ctx context.Context) error
	Reload()
}

// CatalogStore keeps the product list and its stock counters in memory.
// With a repository configured, loads replace the list and stock decrements
// are written through.
type CatalogStore struct {
	mu       sync.RWMutex
	products []entities.Product
	loading  bool
	loadErr  string

	repo  interfaces.IProductRepository
	group singleflight.Group
}

var _ ICatalogStore = (*CatalogStore)(nil)

func NewCatalogStore(initial []entities.Product, repo interfaces.IProductRepository) *CatalogStore {
	products := make([]entities.Product, len(initial))
	copy(products, initial)
	return &CatalogStore{products: products, repo: repo}
}

func (s *CatalogStore) Snapshot() CatalogSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CatalogSnapshot{Products: s.copyProducts(), Loading: s.loading, Error: s.loadErr}
}

// ListProducts returns the products in catalog order.
func (s *CatalogStore) ListProducts() []entities.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyProducts()
}

func (s *CatalogStore) GetProduct(id string) (entities.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Product{}, false
}

// DecrementStock lowers stock by one, flooring at zero. Unknown ids are a
// no-op.
func (s *CatalogStore) DecrementStock(ctx context.Context, id string) {
	s.mu.Lock()
	decremented := false
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if s.products[i].Stock > 0 {
			s.products[i].Stock--
			decremented = true
		}
		break
	}
	s.mu.Unlock()

	if !decremented || s.repo == nil {
		return
	}
	p, err := s.repo.DecrementStock(ctx, id)
	if err != nil {
		log.Printf("[catalog][store] write-through decrement failed product_id=%s err=%v", id, err)
		return
	}
	if p.ID == "" {
		log.Printf("[catalog][store] write-through decrement skipped (no remote stock) product_id=%s", id)
	}
}

// Load fetches the catalog from the repository. Concurrent calls share one
// fetch. On failure the last known list is kept and the error is exposed.
func (s *CatalogStore) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	_, err, _ := s.group.Do("catalog", func() (interface{}, error) {
		s.mu.Lock()
		s.loading = true
		s.mu.Unlock()

		products, err := s.repo.List(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.loading = false
		if err != nil {
			s.loadErr = err.Error()
			log.Printf("[catalog][store] load failed err=%v", err)
			return nil, err
		}
		s.loadErr = ""
		s.products = products
		log.Printf("[catalog][store] loaded products=%d", len(products))
		return nil, nil
	})
	return err
}

// Reload starts a background Load.
func (s *CatalogStore) Reload() {
	if s.repo == nil {
		return
	}
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
		defer cancel()
		_ = s.Load(ctx)
	}()
}

func (s *CatalogStore) copyProducts() []entities.Product {
	out := make([]entities.Product, len(s.products))
	copy(out, s.products)
	return out
}
