package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API surface on r. Paths mirror the client's
// request layer: auth under /api/auth, transactions under /api/v1.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.GET("/me", h.RequireAuth(), h.Me)

	v1 := r.Group("/api/v1")
	v1.POST("/addTransaction", h.AddTransaction)
	// The client sends filters in a POST body; GET with query params is
	// kept for callers that prefer it.
	v1.POST("/getTransaction", h.GetTransactions)
	v1.GET("/getTransaction", h.GetTransactions)
	v1.PUT("/updateTransaction/:id", h.UpdateTransaction)
	v1.POST("/deleteTransaction/:id", h.DeleteTransaction)
	v1.POST("/reclassifyTransactions", h.ReclassifyTransactions)
}
