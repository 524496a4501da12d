package review

import "time"

// Review is a user's review of a product. Author is the reviewer's
// display name, resolved at query time; a deleted author renders as an
// empty string rather than failing the read.
type Review struct {
	ID        int       `json:"reviewId"`
	ProductID int       `json:"productId"`
	Rating    int       `json:"rating"`
	Body      string    `json:"review"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is a reply to a review. Comments never reference products
// directly, only their parent review.
type Comment struct {
	ID        int       `json:"commentId"`
	ReviewID  int       `json:"reviewId"`
	Body      string    `json:"comment"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewWithComments is a review plus one page of its comments. The
// comment window is applied per review, never shared across reviews.
type ReviewWithComments struct {
	Review
	Comments []Comment `json:"comments"`
}

// CommentPage is one page of a review's comments with pagination
// metadata.
type CommentPage struct {
	Comments     []Comment `json:"comments"`
	Total        int       `json:"total"`
	CurrentPage  int       `json:"currentPage"`
	MaxPageCount int       `json:"maxPageCount"`
}
