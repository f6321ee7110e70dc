package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction types. TypeAll is never stored, it is the filter sentinel
// meaning "do not restrict by type".
const (
	TypeCredit  = "credit"
	TypeExpense = "expense"
	TypeAll     = "all"
)

// CategoryPredictionFailed marks a transaction whose best-effort
// reclassification could not reach the prediction service.
const CategoryPredictionFailed = "Prediction Failed"

// Transaction is one recorded financial event owned by a single user.
type Transaction struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Amount          float64            `json:"amount" bson:"amount"`
	Description     string             `json:"description" bson:"description"`
	Category        string             `json:"category" bson:"category"`
	TransactionType string             `json:"transactionType" bson:"transactionType"`
	Date            time.Time          `json:"date" bson:"date"`
	User            primitive.ObjectID `json:"user" bson:"user"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

// ValidTransactionType reports whether t is a storable transaction type.
func ValidTransactionType(t string) bool {
	return t == TypeCredit || t == TypeExpense
}

// ParseDate accepts the calendar-date form the client sends ("2006-01-02")
// as well as full RFC3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}
