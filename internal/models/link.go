package models

// UsefulLink is a categorized, attributed hyperlink. AuthorID refers to the
// user that created the link, the reference is not enforced by storage.
type UsefulLink struct {
	ID          string  `json:"id" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	URL         string  `json:"url" validate:"required,url"`
	Description *string `json:"description"`
	Category    string  `json:"category" validate:"required"`
	AuthorID    string  `json:"author_id" validate:"required"`
	CreatedAt   string  `json:"created_at" validate:"required,rfc3339"`
}

// Describe returns a pointer to d, or nil when d is empty.
func Describe(d string) *string {
	if d == "" {
		return nil
	}
	return &d
}
