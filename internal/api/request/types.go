package request

// SignUpRequest is the request body for POST /auth/signup
type SignUpRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
}

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateCommunityRequest is the request body for POST /communities
type CreateCommunityRequest struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	ImageData []byte `json:"image_data,omitempty"` // base64 in JSON
}

// UpdateCommunityRequest is the request body for PATCH /communities/{id}
type UpdateCommunityRequest struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	ImageData []byte `json:"image_data,omitempty"`
}

// PostMessageRequest is the request body for POST /messages
type PostMessageRequest struct {
	Content string `json:"content"`
}
