package domain

// Category is a top-level grouping of products. GradientFrom and GradientTo
// carry the storefront's card styling tokens so the client does not hardcode
// per-category colors.
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	GradientFrom string `json:"gradientFrom"`
	GradientTo   string `json:"gradientTo"`
}
