package http

import (
	"net/http"

	"immofund-backend/internal/adapter/middleware"
	ucSale "immofund-backend/internal/usecase/sale"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type SaleHandler struct {
	uc  *ucSale.Usecase
	log zerolog.Logger
}

func NewSaleHandler(uc *ucSale.Usecase, log zerolog.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, log: log}
}

type createSaleReq struct {
	PropertyID string  `json:"property_id" validate:"required,hex32"`
	Amount     float64 `json:"amount"      validate:"required,gt=0,dec2"`
}

type salePathReq struct {
	SaleID string `param:"sale_id" validate:"required,hex32"`
}

func (h *SaleHandler) Create(c echo.Context) error {
	var req createSaleReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), middleware.ActorFrom(c), ucSale.CreateInput{
		PropertyID: req.PropertyID,
		Amount:     req.Amount,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *SaleHandler) Confirm(c echo.Context) error {
	var req salePathReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Confirm(c.Request().Context(), middleware.ActorFrom(c), req.SaleID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SaleHandler) ListMine(c echo.Context) error {
	out, err := h.uc.ListByBuyer(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SaleHandler) ListAll(c echo.Context) error {
	out, err := h.uc.ListAll(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
