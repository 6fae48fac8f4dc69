package http

import (
	"net/http"

	ucClient "loan-ledger/internal/usecase/client"

	"github.com/labstack/echo/v4"
)

type ClientHandler struct{ uc *ucClient.Usecase }

func NewClientHandler(uc *ucClient.Usecase) *ClientHandler { return &ClientHandler{uc: uc} }

type clientReq struct {
	CompanyName   string `json:"company_name"   validate:"max=255"`
	ContactPerson string `json:"contact_person" validate:"notblank,max=255"`
	Email         string `json:"email"          validate:"required,email,max=255"`
	Phone         string `json:"phone"          validate:"notblank,max=64"`
	StreetAddress string `json:"street_address" validate:"max=255"`
	City          string `json:"city"           validate:"max=128"`
	Region        string `json:"region"         validate:"notblank,max=128"`
}

func (r clientReq) input() ucClient.ClientInput { return ucClient.ClientInput(r) }

func (h *ClientHandler) Register(c echo.Context) error {
	var req clientReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Register(c.Request().Context(), req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ClientHandler) Edit(c echo.Context) error {
	clientID, ok, err := validID(c, "client_id")
	if !ok {
		return err
	}
	var req clientReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Edit(c.Request().Context(), clientID, req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Get returns the client with its loans.
func (h *ClientHandler) Get(c echo.Context) error {
	clientID, ok, err := validID(c, "client_id")
	if !ok {
		return err
	}
	dto, err := h.uc.Detail(c.Request().Context(), clientID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClientHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// RecomputeRating is an admin reconcile endpoint. Loan writes keep the
// counters and rating current on their own; this rebuilds both from the
// client's loans after a manual data fix or an import.
func (h *ClientHandler) RecomputeRating(c echo.Context) error {
	clientID, ok, err := validID(c, "client_id")
	if !ok {
		return err
	}
	dto, err := h.uc.RecomputeRating(c.Request().Context(), clientID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
