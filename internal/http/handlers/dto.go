package handlers

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ProductResponse struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Stock int    `json:"stock"`
}

type ProductsResult struct {
	Success bool              `json:"success"`
	Data    []ProductResponse `json:"data"`
	Count   int               `json:"count"`
}

// UserResponse mirrors the stored account, password included.
type UserResponse struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    *UserResponse `json:"user,omitempty"`
}

type HealthResult struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
