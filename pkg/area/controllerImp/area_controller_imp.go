package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hoacuong/entities"
	"hoacuong/pkg/area/controller"
	"hoacuong/pkg/area/service"
	"hoacuong/pkg/i18n"
	"hoacuong/pkg/middleware"
)

type AreaCtrl struct{ s service.AreaService }

func New(s service.AreaService) controller.AreaController { return &AreaCtrl{s} }

type areaView struct {
	entities.GrowingArea
	StatusLabel string `json:"status_label"`
}

func view(a entities.GrowingArea, lang string) areaView {
	return areaView{GrowingArea: a, StatusLabel: a.Status.Label(lang)}
}

func (h *AreaCtrl) Create(c echo.Context) error {
	lang := middleware.LangOf(c)
	var req service.AreaInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": i18n.T(lang, i18n.KeyBadJSON)})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, view(h.s.CreateArea(req), lang))
}

func (h *AreaCtrl) List(c echo.Context) error {
	lang := middleware.LangOf(c)
	list := h.s.SearchAreas(c.QueryParam("q"))
	out := make([]areaView, 0, len(list))
	for _, a := range list {
		out = append(out, view(a, lang))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AreaCtrl) Get(c echo.Context) error {
	lang := middleware.LangOf(c)
	a, ok := h.s.GetArea(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": i18n.T(lang, i18n.KeyNotFound)})
	}
	return c.JSON(http.StatusOK, view(a, lang))
}

func (h *AreaCtrl) Update(c echo.Context) error {
	lang := middleware.LangOf(c)
	var patch service.AreaPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": i18n.T(lang, i18n.KeyBadJSON)})
	}
	if err := c.Validate(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	a, ok := h.s.UpdateArea(c.Param("id"), patch)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": i18n.T(lang, i18n.KeyNotFound)})
	}
	return c.JSON(http.StatusOK, view(a, lang))
}

// Delete is idempotent; dependent farmers keep their area_id.
func (h *AreaCtrl) Delete(c echo.Context) error {
	h.s.DeleteArea(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
