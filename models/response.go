package models

// Response is the bare envelope every endpoint answers with. Endpoints
// that return data embed it in one of the payload-carrying variants.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"Transaction added successfully"`
}

type UserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"User created successfully"`
	User    *User  `json:"user,omitempty"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"Welcome back, John"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type TransactionResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	Transaction *Transaction `json:"transaction,omitempty"`
}

type TransactionsResponse struct {
	Success      bool          `json:"success"`
	Transactions []Transaction `json:"transactions"`
}

type ReclassifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Updated int    `json:"updated" example:"12"`
	Failed  int    `json:"failed" example:"1"`
}
