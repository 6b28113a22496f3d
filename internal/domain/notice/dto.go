package notice

type CreateNoticeInput struct {
	Title       string `json:"title" binding:"required"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Published   *bool  `json:"published"`
}

type UpdateNoticeInput struct {
	Title       *string `json:"title"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Published   *bool   `json:"published"`
}

// ListFilter narrows the admin notice list: case-insensitive substring on
// the title, exact match on the type.
type ListFilter struct {
	Query string `form:"q"`
	Type  string `form:"type"`
}
