package blog

type CreatePostInput struct {
	Title    string   `json:"title" binding:"required"`
	Author   string   `json:"author" binding:"required"`
	Content  string   `json:"content"`
	CoverKey string   `json:"cover_key"`
	Tags     []string `json:"tags"`
}

type UpdatePostInput struct {
	Title     *string   `json:"title"`
	Author    *string   `json:"author"`
	Content   *string   `json:"content"`
	CoverKey  *string   `json:"cover_key"`
	Tags      *[]string `json:"tags"`
	Published *bool     `json:"published"`
}

type ListFilter struct {
	Query  string `form:"q"`      // substring on title/author
	Author string `form:"author"` // exact
}
