package db

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/expenseflow/backend/models"
)

// FrequencyCustom selects an explicit [startDate, endDate] range instead
// of a trailing day-count window.
const FrequencyCustom = "custom"

// ErrInvalidFilter is wrapped by every filter validation failure.
var ErrInvalidFilter = errors.New("invalid transaction filter")

// FilterParams describes one transaction listing request.
type FilterParams struct {
	UserID    primitive.ObjectID
	Type      string // "credit", "expense" or "all"
	Frequency string // day count ("7", "30", ...) or "custom"
	StartDate string
	EndDate   string
}

// BuildTransactionFilter translates params into a MongoDB filter scoped to
// the owning user. It is a pure function of its inputs and now.
//
// An empty or "custom" frequency with neither bound supplied applies no
// date restriction; supplying exactly one bound is rejected.
func BuildTransactionFilter(p FilterParams, now time.Time) (bson.M, error) {
	filter := bson.M{"user": p.UserID}

	if p.Type != "" && p.Type != models.TypeAll {
		if !models.ValidTransactionType(p.Type) {
			return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidFilter, p.Type)
		}
		filter["transactionType"] = p.Type
	}

	switch {
	case p.Frequency == "" || p.Frequency == FrequencyCustom:
		if p.StartDate == "" && p.EndDate == "" {
			break
		}
		if p.StartDate == "" || p.EndDate == "" {
			return nil, fmt.Errorf("%w: custom range needs both startDate and endDate", ErrInvalidFilter)
		}
		start, err := models.ParseDate(p.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad startDate %q", ErrInvalidFilter, p.StartDate)
		}
		end, err := models.ParseDate(p.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad endDate %q", ErrInvalidFilter, p.EndDate)
		}
		filter["date"] = bson.M{"$gte": start, "$lte": end}

	default:
		days, err := strconv.Atoi(p.Frequency)
		if err != nil || days < 0 {
			return nil, fmt.Errorf("%w: frequency %q is not a day count", ErrInvalidFilter, p.Frequency)
		}
		filter["date"] = bson.M{"$gt": now.AddDate(0, 0, -days)}
	}

	return filter, nil
}
