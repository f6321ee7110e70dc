package api

// In-memory fakes for the Store and Classifier ports.

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/expenseflow/backend/db"
	"github.com/expenseflow/backend/models"
)

type fakeStore struct {
	users        map[primitive.ObjectID]models.User
	transactions map[primitive.ObjectID]models.Transaction
	order        []primitive.ObjectID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        map[primitive.ObjectID]models.User{},
		transactions: map[primitive.ObjectID]models.Transaction{},
	}
}

func (f *fakeStore) CreateUser(_ context.Context, name, email, passwordHash string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return nil, db.ErrDuplicateEmail
		}
	}
	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		Password:     passwordHash,
		Transactions: []primitive.ObjectID{},
		CreatedAt:    time.Now().UTC(),
	}
	f.users[user.ID] = user
	return &user, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeStore) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &u, nil
}

func (f *fakeStore) CreateTransaction(_ context.Context, t *models.Transaction) error {
	user, ok := f.users[t.User]
	if !ok {
		return db.ErrNotFound
	}
	t.ID = primitive.NewObjectID()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	f.transactions[t.ID] = *t
	f.order = append(f.order, t.ID)
	user.Transactions = append(user.Transactions, t.ID)
	f.users[user.ID] = user
	return nil
}

func (f *fakeStore) FindTransactions(_ context.Context, filter bson.M) ([]models.Transaction, error) {
	matches := []models.Transaction{}
	for _, id := range f.order {
		t, ok := f.transactions[id]
		if ok && matchFilter(t, filter) {
			matches = append(matches, t)
		}
	}
	return matches, nil
}

func (f *fakeStore) GetTransactionByID(_ context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	t, ok := f.transactions[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &t, nil
}

func (f *fakeStore) UpdateTransaction(_ context.Context, id primitive.ObjectID, set bson.M) (*models.Transaction, error) {
	t, ok := f.transactions[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	for key, value := range set {
		switch key {
		case "title":
			t.Title = value.(string)
		case "amount":
			t.Amount = value.(float64)
		case "description":
			t.Description = value.(string)
		case "category":
			t.Category = value.(string)
		case "transactionType":
			t.TransactionType = value.(string)
		case "date":
			t.Date = value.(time.Time)
		}
	}
	f.transactions[id] = t
	return &t, nil
}

func (f *fakeStore) DeleteTransaction(_ context.Context, id, userID primitive.ObjectID) error {
	t, ok := f.transactions[id]
	if !ok || t.User != userID {
		return db.ErrNotFound
	}
	delete(f.transactions, id)

	user := f.users[userID]
	refs := user.Transactions[:0]
	for _, ref := range user.Transactions {
		if ref != id {
			refs = append(refs, ref)
		}
	}
	user.Transactions = refs
	f.users[userID] = user
	return nil
}

// matchFilter evaluates the subset of MongoDB filters the query builder
// produces: equality on user and transactionType, $gt/$gte/$lte on date.
func matchFilter(t models.Transaction, filter bson.M) bool {
	if owner, ok := filter["user"]; ok && t.User != owner.(primitive.ObjectID) {
		return false
	}
	if typ, ok := filter["transactionType"]; ok && t.TransactionType != typ.(string) {
		return false
	}
	if cond, ok := filter["date"]; ok {
		for op, v := range cond.(bson.M) {
			bound := v.(time.Time)
			switch op {
			case "$gt":
				if !t.Date.After(bound) {
					return false
				}
			case "$gte":
				if t.Date.Before(bound) {
					return false
				}
			case "$lte":
				if t.Date.After(bound) {
					return false
				}
			}
		}
	}
	return true
}

type fakeClassifier struct {
	category string
	err      error
	failFor  map[string]error
	calls    int
}

func (f *fakeClassifier) PredictCategory(_ context.Context, title string) (string, error) {
	f.calls++
	if err, ok := f.failFor[title]; ok {
		return "", err
	}
	if f.err != nil {
		return "", f.err
	}
	return f.category, nil
}
