package models

// Request payloads. Optional numeric and partial-update fields are
// pointers so "absent" and "zero" stay distinguishable.

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AddTransactionRequest struct {
	Title           string   `json:"title"`
	Amount          *float64 `json:"amount"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`
	Category        string   `json:"category"`
	TransactionType string   `json:"transactionType"`
	UserID          string   `json:"userId"`
}

type ListTransactionsRequest struct {
	UserID    string `json:"userId"`
	Type      string `json:"type"`
	Frequency string `json:"frequency"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type UpdateTransactionRequest struct {
	Title           *string  `json:"title"`
	Amount          *float64 `json:"amount"`
	Description     *string  `json:"description"`
	Date            *string  `json:"date"`
	Category        *string  `json:"category"`
	TransactionType *string  `json:"transactionType"`
}

type DeleteTransactionRequest struct {
	UserID string `json:"userId"`
}

type ReclassifyTransactionsRequest struct {
	UserID string `json:"userId"`
}
