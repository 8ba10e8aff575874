// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /register endpoint.
// It uses Gin's binding tags for validation; rule violations are mapped to
// fixed messages by the validation package.
type RegisterReq struct {
	Name        string `json:"name" binding:"required,min=5,max=150"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=5,max=25"`
	PhoneNumber string `json:"phone_number" binding:"required,len=10,numeric"`
}
