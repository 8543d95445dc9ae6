package review

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthvault/healthvault/internal/domain/bloodtest"
	"github.com/healthvault/healthvault/internal/platform/auth"
	"github.com/healthvault/healthvault/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "clinician", "importer"))
	readGroup.GET("/reviews", h.ListPending)
	readGroup.GET("/reviews/:id", h.Get)

	writeGroup := api.Group("", auth.RequireRole("admin", "clinician"))
	writeGroup.POST("/reviews", h.Create)
	writeGroup.POST("/reviews/:id/complete", h.Complete)
	writeGroup.POST("/reviews/:id/accept-recommended", h.AcceptAllRecommended)
	writeGroup.POST("/reviews/:id/cancel", h.Cancel)
}

func (h *Handler) Create(c echo.Context) error {
	var sess Session
	if err := c.Bind(&sess); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateSession(c.Request().Context(), &sess); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, sess)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sess, err := h.svc.GetSession(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "review session not found")
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) ListPending(c echo.Context) error {
	pg := pagination.FromContext(c)
	sessions, total, err := h.svc.ListPending(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(sessions, total, pg.Limit, pg.Offset))
}

type completeRequest struct {
	// Selections maps group id to the chosen candidate id. A null or
	// missing entry means the group is ignored.
	Selections map[string]*string `json:"selections"`
}

type completeResponse struct {
	BloodTest        *bloodtest.BloodTestResult `json:"blood_test"`
	AppliedGroups    int                        `json:"applied_groups"`
	UnresolvedGroups []uuid.UUID                `json:"unresolved_groups,omitempty"`
}

func parseSelections(raw map[string]*string) (map[uuid.UUID]uuid.UUID, error) {
	selections := make(map[uuid.UUID]uuid.UUID, len(raw))
	for groupID, candID := range raw {
		gid, err := uuid.Parse(groupID)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid group id: "+groupID)
		}
		if candID == nil {
			continue
		}
		cid, err := uuid.Parse(*candID)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid candidate id: "+*candID)
		}
		selections[gid] = cid
	}
	return selections, nil
}

func (h *Handler) Complete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req completeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	selections, err := parseSelections(req.Selections)
	if err != nil {
		return err
	}
	bt, applied, err := h.svc.Complete(c.Request().Context(), id, selections)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, completeResponse{BloodTest: bt, AppliedGroups: applied})
}

func (h *Handler) AcceptAllRecommended(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	bt, applied, unresolved, err := h.svc.AcceptAllRecommended(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, completeResponse{BloodTest: bt, AppliedGroups: applied, UnresolvedGroups: unresolved})
}

func (h *Handler) Cancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Cancel(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.NoContent(http.StatusOK)
}
