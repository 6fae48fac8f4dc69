package http

import (
	"net/http"
	"strconv"
	"time"

	ucLoan "loan-ledger/internal/usecase/loan"
	ucReport "loan-ledger/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

type LoanHandler struct {
	uc      *ucLoan.Usecase
	reports *ucReport.Usecase
}

func NewLoanHandler(uc *ucLoan.Usecase, reports *ucReport.Usecase) *LoanHandler {
	return &LoanHandler{uc: uc, reports: reports}
}

type createLoanReq struct {
	ClientID     string  `json:"client_id"        validate:"required,hex32"`
	Principal    float64 `json:"principal_amount" validate:"gt=0,dec2"`
	Rate         float64 `json:"interest_rate"    validate:"gte=0"`
	TermDays     int     `json:"loan_term_days"   validate:"gt=0"`
	Installments int     `json:"installments"     validate:"gte=0"`
	Fee          float64 `json:"processing_fee"   validate:"gte=0,dec2"`
}

type editLoanReq struct {
	Principal    float64 `json:"principal_amount" validate:"gt=0,dec2"`
	Rate         float64 `json:"interest_rate"    validate:"gte=0"`
	TermDays     int     `json:"loan_term_days"   validate:"gt=0"`
	Installments int     `json:"installments"     validate:"gte=0"`
	Fee          float64 `json:"processing_fee"   validate:"gte=0,dec2"`
	// Canonical `YYYY-MM-DD`; empty keeps start_date + term.
	DueDate string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type paymentReq struct {
	Amount float64 `json:"amount"         validate:"gt=0,dec2"`
	Method string  `json:"payment_method" validate:"max=32"`
	Notes  string  `json:"notes"          validate:"max=1000"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), ucLoan.CreateLoanInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) EditLoan(c echo.Context) error {
	loanID, ok, err := validID(c, "loan_id")
	if !ok {
		return err
	}
	var req editLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	in := ucLoan.EditLoanInput{
		Principal:    req.Principal,
		Rate:         req.Rate,
		TermDays:     req.TermDays,
		Installments: req.Installments,
		Fee:          req.Fee,
	}
	if req.DueDate != "" {
		due, _ := time.Parse(dateLayout, req.DueDate) // validated above
		in.DueDate = &due
	}
	dto, err := h.uc.Edit(c.Request().Context(), loanID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// GetLoan returns the loan summary: loan, client, payments and outstanding.
func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID, ok, err := validID(c, "loan_id")
	if !ok {
		return err
	}
	dto, err := h.reports.LoanSummary(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	out, err := h.reports.ListLoans(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) PostPayment(c echo.Context) error {
	loanID, ok, err := validID(c, "loan_id")
	if !ok {
		return err
	}
	var req paymentReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.PostPayment(c.Request().Context(), loanID, ucLoan.PaymentInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// SuggestRate reads an optional ?base_rate=; absent uses the configured rate.
func (h *LoanHandler) SuggestRate(c echo.Context) error {
	clientID, ok, err := validID(c, "client_id")
	if !ok {
		return err
	}
	var base float64
	if raw := c.QueryParam("base_rate"); raw != "" {
		base, err = strconv.ParseFloat(raw, 64)
		if err != nil || base <= 0 || base > 1 {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: []FieldError{{Field: "base_rate", Message: "must be a fraction in (0, 1]"}},
			})
		}
	}
	dto, err := h.uc.SuggestRate(c.Request().Context(), clientID, base)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
