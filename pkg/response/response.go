package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// DeniedResponse is the body returned when a known admin role lacks the
// permission for a section. It is deliberately calm: nothing failed, a
// permission boundary was enforced.
type DeniedResponse struct {
	Message string `json:"message"`
}
