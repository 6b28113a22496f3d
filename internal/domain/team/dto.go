package team

type CreateMemberInput struct {
	Name         string `json:"name" binding:"required"`
	Position     string `json:"position"`
	Bio          string `json:"bio"`
	PhotoKey     string `json:"photo_key"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateMemberInput struct {
	Name         *string `json:"name"`
	Position     *string `json:"position"`
	Bio          *string `json:"bio"`
	PhotoKey     *string `json:"photo_key"`
	DisplayOrder *int    `json:"display_order"`
}
