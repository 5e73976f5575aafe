package http

import (
	"net/http"

	"immofund-backend/internal/adapter/middleware"
	"immofund-backend/internal/domain/errs"
	ucCatalog "immofund-backend/internal/usecase/catalog"
	"immofund-backend/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type CatalogHandler struct {
	uc     *ucCatalog.Usecase
	ledger *ledger.Reconciler
	log    zerolog.Logger
}

func NewCatalogHandler(uc *ucCatalog.Usecase, rec *ledger.Reconciler, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, ledger: rec, log: log}
}

type createPropertyReq struct {
	Title     string  `json:"title"      validate:"required,max=255"`
	Price     float64 `json:"price"      validate:"required,gt=0,dec2"`
	Category  string  `json:"category"   validate:"required,oneof=apartment house office"`
	ProjectID string  `json:"project_id" validate:"omitempty,hex32"`
	ImageURL  string  `json:"image_url"  validate:"omitempty,url"`
}

type createProjectReq struct {
	Title          string  `json:"title"           validate:"required,max=255"`
	Description    string  `json:"description"`
	Kind           string  `json:"kind"            validate:"required,oneof=construction renovation"`
	Location       string  `json:"location"        validate:"max=255"`
	TargetAmount   float64 `json:"target_amount"   validate:"required,gt=0,dec2"`
	YieldRate      float64 `json:"yield_rate"      validate:"gte=0,lte=100,dec2"`
	DurationMonths int     `json:"duration_months" validate:"gte=0,lte=600"`
	ImageURL       string  `json:"image_url"       validate:"omitempty,url"`
}

type propertyPathReq struct {
	PropertyID string `param:"property_id" validate:"required,hex32"`
}

type projectPathReq struct {
	ProjectID string `param:"project_id" validate:"required,hex32"`
}

func (h *CatalogHandler) CreateProperty(c echo.Context) error {
	var req createPropertyReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.CreateProperty(c.Request().Context(), middleware.ActorFrom(c), ucCatalog.CreatePropertyInput{
		Title:     req.Title,
		Price:     req.Price,
		Category:  req.Category,
		ProjectID: req.ProjectID,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *CatalogHandler) GetProperty(c echo.Context) error {
	var req propertyPathReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.GetProperty(c.Request().Context(), req.PropertyID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) CreateProject(c echo.Context) error {
	var req createProjectReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.CreateProject(c.Request().Context(), middleware.ActorFrom(c), ucCatalog.CreateProjectInput{
		Title:          req.Title,
		Description:    req.Description,
		Kind:           req.Kind,
		Location:       req.Location,
		TargetAmount:   req.TargetAmount,
		YieldRate:      req.YieldRate,
		DurationMonths: req.DurationMonths,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *CatalogHandler) GetProject(c echo.Context) error {
	var req projectPathReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.GetProject(c.Request().Context(), req.ProjectID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) ListProjects(c echo.Context) error {
	out, err := h.uc.ListProjects(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Reconcile runs the ledger check on demand.
func (h *CatalogHandler) Reconcile(c echo.Context) error {
	if !middleware.ActorFrom(c).IsAdmin() {
		return writeError(c, h.log, errs.New(errs.ErrForbidden, "only an administrator can reconcile the ledger"))
	}
	mismatches, err := h.ledger.Check(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"mismatches": len(mismatches),
		"projects":   mismatches,
	})
}
