package user

type CreateUserInput struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Password string  `json:"password" binding:"required,min=6"`
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name"`
}

type UpdateUserInput struct {
	OldPassword *string `json:"old_password"`
	Password    *string `json:"password" binding:"omitempty,min=6"`
	Email       *string `json:"email" binding:"omitempty,email"`
	FullName    *string `json:"full_name"`
	Role        *string `json:"role"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
