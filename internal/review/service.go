package review

import "github.com/buildware/market-backend/internal/pagination"

// Service composes review and comment pages. Nested windows are
// permissive: a window past the end of a review's comments yields an
// empty sequence, not an error. Only a missing review itself is a
// not-found condition.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NestedForProduct returns one page of a product's reviews, each
// carrying one page of its own comments. The same comment window
// (page, limit) is applied independently to every review on the page:
// comment page 2 of one review never affects another review's page.
func (s *Service) NestedForProduct(productID, reviewPage, reviewLimit, commentPage, commentLimit int) ([]ReviewWithComments, error) {
	total, err := s.repo.CountByProduct(productID)
	if err != nil {
		return nil, err
	}

	res := pagination.Paginate(reviewPage, reviewLimit, total)
	if total == 0 || !res.InRange {
		return []ReviewWithComments{}, nil
	}

	reviews, err := s.repo.ListByProduct(productID, res.Window)
	if err != nil {
		return nil, err
	}

	commentWindow := pagination.Window{
		Offset: (commentPage - 1) * commentLimit,
		Limit:  commentLimit,
	}

	out := make([]ReviewWithComments, 0, len(reviews))
	for _, rv := range reviews {
		comments, err := s.repo.ListComments(rv.ID, commentWindow)
		if err != nil {
			return nil, err
		}
		if comments == nil {
			comments = []Comment{}
		}
		out = append(out, ReviewWithComments{Review: rv, Comments: comments})
	}
	return out, nil
}

// CommentsFor returns one page of a review's comments. The review must
// exist; an empty page of an existing review is a success.
func (s *Service) CommentsFor(reviewID, page, limit int) (CommentPage, error) {
	if _, err := s.repo.GetByID(reviewID); err != nil {
		return CommentPage{}, err
	}

	total, err := s.repo.CountComments(reviewID)
	if err != nil {
		return CommentPage{}, err
	}

	res := pagination.Paginate(page, limit, total)
	comments := []Comment{}
	if total > 0 && res.InRange {
		comments, err = s.repo.ListComments(reviewID, res.Window)
		if err != nil {
			return CommentPage{}, err
		}
	}
	return CommentPage{
		Comments:     comments,
		Total:        total,
		CurrentPage:  page,
		MaxPageCount: res.MaxPage,
	}, nil
}
