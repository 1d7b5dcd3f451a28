package product

import "errors"

// ServiceInterface lets other packages (order enrichment, tests) depend on
// the product service without the concrete type.
type ServiceInterface interface {
	List() []Product
	GetByID(id int) (Product, error)
	ListByFarmer(farmer string) ([]Product, error)
	Create(p Product, farmer string) (Product, error)
	Delete(id int, farmer string) error
}

type Service struct {
	repo Repository
}

var _ ServiceInterface = (*Service)(nil)

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByFarmer(farmer string) ([]Product, error) {
	if farmer == "" {
		return nil, errors.New("farmer is required")
	}
	return s.repo.ListByFarmer(farmer)
}

func (s *Service) Create(p Product, farmer string) (Product, error) {
	if p.Name == "" || p.UnitPrice == "" || p.Category == "" {
		return Product{}, errors.New("name, unitPrice and category are required")
	}
	p.Farmer = farmer
	return s.repo.Create(p)
}

// Delete removes a listing; only the owning farmer may delete it.
func (s *Service) Delete(id int, farmer string) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.Farmer != farmer {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
