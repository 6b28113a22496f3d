package inbox

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// HiringInput arrives as multipart form data so the resume file can ride
// along.
type HiringInput struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Position string `form:"position" binding:"required"`
	Note     string `form:"note"`
}

type FeedbackInput struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"omitempty,email"`
	Rating  int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// ListFilter narrows inbox listings: substring on name/email, optional
// reviewed flag.
type ListFilter struct {
	Query    string `form:"q"`
	Reviewed *bool  `form:"reviewed"`
}
