package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/expenseflow/backend/models"
)

var (
	// ErrNotFound is returned when a referenced user or transaction does
	// not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when registering an email that already
	// has an account.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Storage wraps the MongoDB connection and the two collections the app
// uses. All multi-document mutations run inside a session so the
// transaction document and the owner's reference list move together.
type Storage struct {
	client       *mongo.Client
	users        *mongo.Collection
	transactions *mongo.Collection
}

// NewStorage connects to MongoDB and prepares the users and transactions
// collections. A unique index on users.email backs the duplicate-
// registration check.
func NewStorage(ctx context.Context, uri, dbName string) (*Storage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	database := client.Database(dbName)
	s := &Storage{
		client:       client,
		users:        database.Collection("users"),
		transactions: database.Collection("transactions"),
	}

	_, err = s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// CreateUser inserts a new user with an empty transaction list. The
// password argument must already be hashed.
func (s *Storage) CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	user := &models.User{
		Name:         name,
		Email:        email,
		Password:     passwordHash,
		Transactions: []primitive.ObjectID{},
		CreatedAt:    time.Now().UTC(),
	}

	res, err := s.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateTransaction inserts the transaction and appends its id to the
// owning user's reference list in one session, so a failure between the
// two writes cannot leave a dangling reference.
func (s *Storage) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := s.transactions.InsertOne(sc, t)
		if err != nil {
			return nil, err
		}
		t.ID = res.InsertedID.(primitive.ObjectID)

		upd, err := s.users.UpdateByID(sc, t.User, bson.M{"$push": bson.M{"transactions": t.ID}})
		if err != nil {
			return nil, err
		}
		if upd.MatchedCount == 0 {
			return nil, ErrNotFound
		}
		return nil, nil
	})
	return err
}

// FindTransactions returns all transactions matching filter. No
// pagination: the caller gets every match.
func (s *Storage) FindTransactions(ctx context.Context, filter bson.M) ([]models.Transaction, error) {
	cursor, err := s.transactions.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	transactions := []models.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *Storage) GetTransactionByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	var t models.Transaction
	err := s.transactions.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTransaction applies set as a $set document and returns the
// updated transaction. Fields absent from set keep their stored value.
func (s *Storage) UpdateTransaction(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Transaction, error) {
	if len(set) == 0 {
		return s.GetTransactionByID(ctx, id)
	}

	var t models.Transaction
	err := s.transactions.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTransaction removes the transaction document and pulls its id
// from the owner's reference list in one session.
func (s *Storage) DeleteTransaction(ctx context.Context, id, userID primitive.ObjectID) error {
	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := s.transactions.DeleteOne(sc, bson.M{"_id": id, "user": userID})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}

		_, err = s.users.UpdateByID(sc, userID, bson.M{"$pull": bson.M{"transactions": id}})
		return nil, err
	})
	return err
}
