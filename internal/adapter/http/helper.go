package http

import (
	"errors"
	"log"
	"net/http"

	domainClient "loan-ledger/internal/domain/client"
	domainLoan "loan-ledger/internal/domain/loan"
	domainPayment "loan-ledger/internal/domain/payment"

	"github.com/labstack/echo/v4"
)

// writeError maps domain sentinels to status codes. Anything unknown is a 500
// and is logged; its text is not sent to the client.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainClient.ErrNotFound),
		errors.Is(err, domainLoan.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainClient.ErrValidation),
		errors.Is(err, domainLoan.ErrValidation),
		errors.Is(err, domainPayment.ErrInvalidAmount):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// bindAndValidate binds the body into req; a false return means the error
// response has already been written.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

// validID rejects malformed path ids before they reach the store.
func validID(c echo.Context, param string) (string, bool, error) {
	v := c.Param(param)
	if !reHex32.MatchString(v) {
		return "", false, c.JSON(http.StatusNotFound, ErrorResponse{Error: "invalid " + param})
	}
	return v, true, nil
}
