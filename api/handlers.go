package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/expenseflow/backend/db"
	"github.com/expenseflow/backend/models"
)

type Handler struct {
	storage    Store
	classifier Classifier
	jwtSecret  string
}

func NewHandler(storage Store, classifier Classifier, jwtSecret string) *Handler {
	return &Handler{storage: storage, classifier: classifier, jwtSecret: jwtSecret}
}

// fail writes the failure envelope and stops.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, models.Response{Success: false, Message: message})
}

// AddTransaction creates a transaction for a user. If no category is
// supplied the classifier picks one; that path is strict, so a classifier
// failure fails the whole request and nothing is persisted.
// @Summary Add a transaction
// @Accept json
// @Produce json
// @Param request body models.AddTransactionRequest true "Transaction"
// @Success 201 {object} models.TransactionResponse
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /v1/addTransaction [post]
func (h *Handler) AddTransaction(c *gin.Context) {
	var req models.AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" || req.Amount == nil || req.Description == "" || req.Date == "" || req.TransactionType == "" || req.UserID == "" {
		fail(c, http.StatusBadRequest, "Please fill all fields")
		return
	}
	if !models.ValidTransactionType(req.TransactionType) {
		fail(c, http.StatusBadRequest, "Transaction type must be credit or expense")
		return
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid date")
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.storage.GetUserByID(c.Request.Context(), userID)
	if errors.Is(err, db.ErrNotFound) {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	category := req.Category
	if category == "" {
		category, err = h.classifier.PredictCategory(c.Request.Context(), req.Title)
		if err != nil {
			fail(c, http.StatusBadGateway, "Category prediction failed")
			return
		}
	}

	transaction := &models.Transaction{
		Title:           req.Title,
		Amount:          *req.Amount,
		Description:     req.Description,
		Category:        category,
		TransactionType: req.TransactionType,
		Date:            date,
		User:            user.ID,
	}
	if err := h.storage.CreateTransaction(c.Request.Context(), transaction); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, models.TransactionResponse{
		Success:     true,
		Message:     "Transaction added successfully",
		Transaction: transaction,
	})
}

// GetTransactions lists a user's transactions through the filter builder.
// It answers both POST (criteria in the body) and GET (criteria in the
// query string), mirroring the client's two call styles.
// @Summary List transactions
// @Accept json
// @Produce json
// @Param request body models.ListTransactionsRequest true "Filter"
// @Success 200 {object} models.TransactionsResponse
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /v1/getTransaction [post]
func (h *Handler) GetTransactions(c *gin.Context) {
	var req models.ListTransactionsRequest
	if c.Request.Method == http.MethodGet {
		req.UserID = c.Query("userId")
		req.Type = c.Query("type")
		req.Frequency = c.Query("frequency")
		req.StartDate = c.Query("startDate")
		req.EndDate = c.Query("endDate")
	} else if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == "" {
		fail(c, http.StatusBadRequest, "Please provide a userId")
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.storage.GetUserByID(c.Request.Context(), userID)
	if errors.Is(err, db.ErrNotFound) {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	filter, err := db.BuildTransactionFilter(db.FilterParams{
		UserID:    user.ID,
		Type:      req.Type,
		Frequency: req.Frequency,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}, time.Now())
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	transactions, err := h.storage.FindTransactions(c.Request.Context(), filter)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.TransactionsResponse{Success: true, Transactions: transactions})
}

// UpdateTransaction overwrites exactly the fields present in the request;
// absent fields keep their stored value.
// @Summary Update a transaction
// @Accept json
// @Produce json
// @Param id path string true "Transaction id"
// @Param request body models.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} models.TransactionResponse
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /v1/updateTransaction/{id} [put]
func (h *Handler) UpdateTransaction(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req models.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Amount != nil {
		set["amount"] = *req.Amount
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.TransactionType != nil {
		if !models.ValidTransactionType(*req.TransactionType) {
			fail(c, http.StatusBadRequest, "Transaction type must be credit or expense")
			return
		}
		set["transactionType"] = *req.TransactionType
	}
	if req.Date != nil {
		date, err := models.ParseDate(*req.Date)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid date")
			return
		}
		set["date"] = date
	}

	transaction, err := h.storage.UpdateTransaction(c.Request.Context(), id, set)
	if errors.Is(err, db.ErrNotFound) {
		fail(c, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.TransactionResponse{
		Success:     true,
		Message:     "Transaction updated successfully",
		Transaction: transaction,
	})
}

// DeleteTransaction removes the transaction document and its id from the
// owner's reference list.
// @Summary Delete a transaction
// @Accept json
// @Produce json
// @Param id path string true "Transaction id"
// @Param request body models.DeleteTransactionRequest true "Owner"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /v1/deleteTransaction/{id} [post]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req models.DeleteTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		fail(c, http.StatusBadRequest, "Please provide a userId")
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.storage.GetUserByID(c.Request.Context(), userID)
	if errors.Is(err, db.ErrNotFound) {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	err = h.storage.DeleteTransaction(c.Request.Context(), id, user.ID)
	if errors.Is(err, db.ErrNotFound) {
		fail(c, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Transaction deleted successfully"})
}

// ReclassifyTransactions re-runs the classifier over every transaction a
// user owns. Unlike AddTransaction this path is best-effort: an item whose
// prediction fails is marked with the Prediction Failed category and the
// sweep continues.
// @Summary Reclassify a user's transactions
// @Accept json
// @Produce json
// @Param request body models.ReclassifyTransactionsRequest true "Owner"
// @Success 200 {object} models.ReclassifyResponse
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /v1/reclassifyTransactions [post]
func (h *Handler) ReclassifyTransactions(c *gin.Context) {
	var req models.ReclassifyTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		fail(c, http.StatusBadRequest, "Please provide a userId")
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.storage.GetUserByID(c.Request.Context(), userID)
	if errors.Is(err, db.ErrNotFound) {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	transactions, err := h.storage.FindTransactions(c.Request.Context(), bson.M{"user": user.ID})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	updated, failed := 0, 0
	for _, t := range transactions {
		category, err := h.classifier.PredictCategory(c.Request.Context(), t.Title)
		if err != nil {
			category = models.CategoryPredictionFailed
			failed++
		} else {
			updated++
		}
		if _, err := h.storage.UpdateTransaction(c.Request.Context(), t.ID, bson.M{"category": category}); err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, models.ReclassifyResponse{
		Success: true,
		Message: "Reclassification complete",
		Updated: updated,
		Failed:  failed,
	})
}
