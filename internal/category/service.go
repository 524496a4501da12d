package category

// Service provides read access to categories.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Category, error) {
	return s.repo.GetByID(id)
}

// Exists reports whether the category id resolves, distinguishing a
// missing category from a storage failure.
func (s *Service) Exists(id int) (bool, error) {
	_, err := s.repo.GetByID(id)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
