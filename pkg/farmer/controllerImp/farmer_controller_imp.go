package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hoacuong/entities"
	"hoacuong/pkg/farmer/controller"
	"hoacuong/pkg/farmer/service"
	"hoacuong/pkg/i18n"
	"hoacuong/pkg/middleware"
)

type FarmerCtrl struct{ s service.FarmerService }

func New(s service.FarmerService) controller.FarmerController { return &FarmerCtrl{s} }

type farmerView struct {
	entities.Farmer
	AreaLabel string `json:"area_label"`
}

func (h *FarmerCtrl) view(f entities.Farmer, lang string) farmerView {
	label := i18n.T(lang, i18n.KeyAreaUnassigned)
	if a, ok := h.s.AreaOf(f); ok {
		label = i18n.T(lang, i18n.KeyAreaLabel, a.Code)
	}
	return farmerView{Farmer: f, AreaLabel: label}
}

func (h *FarmerCtrl) Create(c echo.Context) error {
	lang := middleware.LangOf(c)
	var req service.FarmerInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": i18n.T(lang, i18n.KeyBadJSON)})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, h.view(h.s.CreateFarmer(req), lang))
}

func (h *FarmerCtrl) List(c echo.Context) error {
	lang := middleware.LangOf(c)
	list := h.s.SearchFarmers(c.QueryParam("q"))
	out := make([]farmerView, 0, len(list))
	for _, f := range list {
		out = append(out, h.view(f, lang))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmerCtrl) Get(c echo.Context) error {
	lang := middleware.LangOf(c)
	f, ok := h.s.GetFarmer(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": i18n.T(lang, i18n.KeyNotFound)})
	}
	return c.JSON(http.StatusOK, h.view(f, lang))
}

func (h *FarmerCtrl) Update(c echo.Context) error {
	lang := middleware.LangOf(c)
	var patch service.FarmerPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": i18n.T(lang, i18n.KeyBadJSON)})
	}
	if err := c.Validate(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	f, ok := h.s.UpdateFarmer(c.Param("id"), patch)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": i18n.T(lang, i18n.KeyNotFound)})
	}
	return c.JSON(http.StatusOK, h.view(f, lang))
}

func (h *FarmerCtrl) Delete(c echo.Context) error {
	h.s.DeleteFarmer(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
