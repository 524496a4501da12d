package popular

// Service ranks products by purchase count over the payment ledger and
// enriches the top entries with catalog metadata.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Top returns the n most purchased products in rank order. Products
// are resolved in one batched lookup; a ranked entry whose product has
// since been deleted is a dangling ledger reference and is dropped
// silently. An empty ledger yields an empty, successful result.
func (s *Service) Top(n int) ([]Item, error) {
	counts, err := s.repo.TopProductCounts(n)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return []Item{}, nil
	}

	ids := make([]int, 0, len(counts))
	for _, pc := range counts {
		ids = append(ids, pc.ProductID)
	}
	catalog, err := s.repo.CatalogByIDs(ids)
	if err != nil {
		return nil, err
	}

	out := make([]Item, 0, len(counts))
	for _, pc := range counts {
		info, ok := catalog[pc.ProductID]
		if !ok {
			continue
		}
		out = append(out, Item{
			ProductID:   pc.ProductID,
			Name:        info.Name,
			Size:        info.Size,
			Price:       info.Price,
			Description: info.Description,
			BrandName:   info.BrandName,
			Image:       info.Image,
			Purchases:   pc.Purchases,
		})
	}
	return out, nil
}
