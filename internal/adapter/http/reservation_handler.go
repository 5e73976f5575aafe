package http

import (
	"net/http"

	"immofund-backend/internal/adapter/middleware"
	"immofund-backend/internal/domain/reservation"
	ucReservation "immofund-backend/internal/usecase/reservation"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type ReservationHandler struct {
	uc  *ucReservation.Usecase
	log zerolog.Logger
}

func NewReservationHandler(uc *ucReservation.Usecase, log zerolog.Logger) *ReservationHandler {
	return &ReservationHandler{uc: uc, log: log}
}

type createReservationReq struct {
	PropertyID     string         `json:"property_id"     validate:"required,hex32"`
	LoanSimulation map[string]any `json:"loan_simulation"`
}

type resolveReservationReq struct {
	ReservationID string `param:"reservation_id" validate:"required,hex32"`
	Decision      string `json:"decision"        validate:"required,oneof=accepted rejected"`
}

type reservationPathReq struct {
	ReservationID string `param:"reservation_id" validate:"required,hex32"`
}

func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), middleware.ActorFrom(c), ucReservation.CreateInput{
		PropertyID:     req.PropertyID,
		LoanSimulation: req.LoanSimulation,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ReservationHandler) Resolve(c echo.Context) error {
	var req resolveReservationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.Resolve(c.Request().Context(), middleware.ActorFrom(c), req.ReservationID, reservation.Status(req.Decision))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) Cancel(c echo.Context) error {
	var req reservationPathReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.Cancel(c.Request().Context(), middleware.ActorFrom(c), req.ReservationID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) Purge(c echo.Context) error {
	var req reservationPathReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.Purge(c.Request().Context(), middleware.ActorFrom(c), req.ReservationID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) ListMine(c echo.Context) error {
	out, err := h.uc.ListByBuyer(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReservationHandler) ListReceived(c echo.Context) error {
	out, err := h.uc.ListByOwner(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
