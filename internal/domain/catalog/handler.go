package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthvault/healthvault/internal/platform/auth"
	"github.com/healthvault/healthvault/pkg/pagination"
)

type Handler struct {
	cat *Catalog
}

func NewHandler(cat *Catalog) *Handler {
	return &Handler{cat: cat}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "clinician", "importer"))
	readGroup.GET("/parameters", h.ListParameters)
	readGroup.GET("/parameters/resolve", h.ResolveParameter)
	readGroup.GET("/parameters/:key", h.GetParameter)
}

func (h *Handler) ListParameters(c echo.Context) error {
	pg := pagination.FromContext(c)
	category := Category(c.QueryParam("category"))
	items, total := h.cat.List(category, pg.Limit, pg.Offset)
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetParameter(c echo.Context) error {
	p, ok := h.cat.Lookup(c.Param("key"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "parameter not found")
	}
	return c.JSON(http.StatusOK, p)
}

// ResolveParameter resolves a raw extracted test name to a catalog entry
// using the same heuristics the reconciliation engine applies.
func (h *Handler) ResolveParameter(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	p, ok := h.cat.Resolve(name)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no matching parameter")
	}
	return c.JSON(http.StatusOK, p)
}
