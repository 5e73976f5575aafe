package http

import (
	"net/http"

	"immofund-backend/internal/adapter/middleware"
	ucInvestment "immofund-backend/internal/usecase/investment"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type InvestmentHandler struct {
	uc  *ucInvestment.Usecase
	log zerolog.Logger
}

func NewInvestmentHandler(uc *ucInvestment.Usecase, log zerolog.Logger) *InvestmentHandler {
	return &InvestmentHandler{uc: uc, log: log}
}

type investReq struct {
	ProjectID string  `json:"project_id" validate:"required,hex32"`
	Amount    float64 `json:"amount"     validate:"required,gt=0,dec2"`
}

func (h *InvestmentHandler) Invest(c echo.Context) error {
	var req investReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Invest(c.Request().Context(), middleware.ActorFrom(c), ucInvestment.InvestInput{
		ProjectID: req.ProjectID,
		Amount:    req.Amount,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InvestmentHandler) ListMine(c echo.Context) error {
	out, err := h.uc.ListByInvestor(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InvestmentHandler) ListAll(c echo.Context) error {
	out, err := h.uc.ListAll(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
