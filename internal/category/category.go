package category

// Category is a product grouping. It is a scoping entity: product
// listings scoped by a category must verify the category exists before
// any product query runs.
type Category struct {
	ID   int    `json:"categoryId"`
	Name string `json:"categoryName"`
}
