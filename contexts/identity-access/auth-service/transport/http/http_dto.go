package httptransport

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse mirrors the source wire shape: the token under "response".
type LoginResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
