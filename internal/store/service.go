package store

// Service provides read access to stores.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Store, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Store, error) {
	return s.repo.GetByID(id)
}

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
