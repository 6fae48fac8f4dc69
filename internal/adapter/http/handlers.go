package http

import (
	"context"
	"net/http"
	"time"

	ucDelinquency "loan-ledger/internal/usecase/delinquency"
	ucReport "loan-ledger/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

type Handler struct{ db Pinger }

// NewHandler: db may be nil, in which case health only reports liveness.
func NewHandler(db Pinger) *Handler { return &Handler{db: db} }

func (h *Handler) Health(c echo.Context) error {
	body := map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	}
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := h.db(ctx); err != nil {
			body["status"] = "degraded"
			body["db"] = err.Error()
			return c.JSON(http.StatusServiceUnavailable, body)
		}
		body["db"] = "ok"
	}
	return c.JSON(http.StatusOK, body)
}

type ReportHandler struct {
	reports *ucReport.Usecase
	sweeps  *ucDelinquency.Usecase
}

func NewReportHandler(reports *ucReport.Usecase, sweeps *ucDelinquency.Usecase) *ReportHandler {
	return &ReportHandler{reports: reports, sweeps: sweeps}
}

func (h *ReportHandler) Dashboard(c echo.Context) error {
	dto, err := h.reports.Dashboard(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReportHandler) PendingNotifications(c echo.Context) error {
	out, err := h.reports.PendingNotifications(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Sweep(c echo.Context) error {
	res, err := h.sweeps.Sweep(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
