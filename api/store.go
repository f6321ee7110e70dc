package api

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/expenseflow/backend/models"
)

// Store is the persistence surface the handlers need. *db.Storage
// implements it; tests substitute an in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)

	CreateTransaction(ctx context.Context, t *models.Transaction) error
	FindTransactions(ctx context.Context, filter bson.M) ([]models.Transaction, error)
	GetTransactionByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id, userID primitive.ObjectID) error
}

// Classifier maps a transaction title to a spending category label.
type Classifier interface {
	PredictCategory(ctx context.Context, title string) (string, error)
}
