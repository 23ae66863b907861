package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"hoacuong/pkg/export"
	"hoacuong/pkg/i18n"
	"hoacuong/pkg/middleware"
	"hoacuong/pkg/purchase/controller"
	"hoacuong/pkg/purchase/service"
	"hoacuong/pkg/store"
)

type PurchaseCtrl struct {
	s  service.PurchaseService
	st *store.Store
}

func New(s service.PurchaseService, st *store.Store) controller.PurchaseController {
	return &PurchaseCtrl{s: s, st: st}
}

func (h *PurchaseCtrl) Create(c echo.Context) error {
	lang := middleware.LangOf(c)
	var req service.PurchaseInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": i18n.T(lang, i18n.KeyBadJSON)})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, h.s.CreatePurchase(req))
}

func (h *PurchaseCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.s.Ledger(c.QueryParam("q")))
}

func (h *PurchaseCtrl) Get(c echo.Context) error {
	p, ok := h.s.GetPurchase(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": i18n.T(middleware.LangOf(c), i18n.KeyNotFound)})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PurchaseCtrl) Delete(c echo.Context) error {
	h.s.DeletePurchase(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// Export sends the whole ledger, in store order, as an xlsx attachment.
func (h *PurchaseCtrl) Export(c echo.Context) error {
	lang := middleware.LangOf(c)
	snap := h.st.Snapshot()
	var buf bytes.Buffer
	if err := export.WritePurchases(&buf, snap.Purchases, snap.Farmers, lang); err != nil {
		logrus.WithError(err).Error("export purchases")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.FileName(lang)))
	return c.Blob(http.StatusOK, export.ContentTypeXLSX, buf.Bytes())
}
