package http

import (
	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health  *Handler
	Clients *ClientHandler
	Loans   *LoanHandler
	Reports *ReportHandler
}

// Register mounts every route on e. mw wraps the POST routes only.
func Register(e *echo.Echo, h Handlers, mw ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	e.POST("/clients", h.Clients.Register, mw...)
	e.GET("/clients", h.Clients.List)
	e.GET("/clients/:client_id", h.Clients.Get)
	e.PUT("/clients/:client_id", h.Clients.Edit)
	// admin: reconcile counters and rating
	e.POST("/clients/:client_id/rating", h.Clients.RecomputeRating, mw...)
	e.GET("/clients/:client_id/suggested-rate", h.Loans.SuggestRate)

	e.POST("/loans", h.Loans.CreateLoan, mw...)
	e.GET("/loans", h.Loans.ListLoans)
	e.GET("/loans/:loan_id", h.Loans.GetLoan)
	e.PUT("/loans/:loan_id", h.Loans.EditLoan)
	e.POST("/loans/:loan_id/payments", h.Loans.PostPayment, mw...)

	e.POST("/delinquency/sweep", h.Reports.Sweep, mw...)
	e.GET("/dashboard", h.Reports.Dashboard)
	e.GET("/notifications", h.Reports.PendingNotifications)
}
