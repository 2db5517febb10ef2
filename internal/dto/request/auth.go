package request

type SignupRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,maxbytes=72"`
	Role     string `json:"role" validate:"required,oneof=patient doctor volunteer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ClientMeta describes the client context a session is established for.
// PriorToken is the session cookie the client already holds, if any.
type ClientMeta struct {
	PriorToken string
	UserAgent  string
	IPAddress  string
}
