package models

// Account is a demo login record. Password is compared verbatim and is
// serialized back to the client on a successful login.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
