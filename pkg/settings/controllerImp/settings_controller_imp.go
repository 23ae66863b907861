package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"hoacuong/entities"
	"hoacuong/pkg/i18n"
	"hoacuong/pkg/middleware"
	"hoacuong/pkg/store"
)

type SettingsCtrl struct{ st *store.Store }

func New(st *store.Store) *SettingsCtrl { return &SettingsCtrl{st: st} }

type confirmReq struct {
	Confirm bool `json:"confirm"`
}

type statsResp struct {
	AreasCount     int `json:"areas_count"`
	FarmersCount   int `json:"farmers_count"`
	PurchasesCount int `json:"purchases_count"`
}

func (h *SettingsCtrl) stats() statsResp {
	a, f, p := h.st.Counts()
	return statsResp{AreasCount: a, FarmersCount: f, PurchasesCount: p}
}

func (h *SettingsCtrl) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.stats())
}

// Reset restores the built-in data set. Requires {"confirm": true}.
func (h *SettingsCtrl) Reset(c echo.Context) error {
	return h.destructive(c, i18n.KeyConfirmReset, i18n.KeyResetDone, func() {
		h.st.Reset(entities.Seed())
	})
}

// Clear empties all three collections. There is no undo.
func (h *SettingsCtrl) Clear(c echo.Context) error {
	return h.destructive(c, i18n.KeyConfirmClear, i18n.KeyClearDone, h.st.Clear)
}

func (h *SettingsCtrl) destructive(c echo.Context, askKey, doneKey string, apply func()) error {
	lang := middleware.LangOf(c)
	var req confirmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": i18n.T(lang, i18n.KeyBadJSON)})
	}
	if !req.Confirm {
		return c.JSON(http.StatusConflict, map[string]string{"confirm": i18n.T(lang, askKey)})
	}
	apply()
	logrus.WithField("path", c.Path()).Warn("store contents replaced")
	return c.JSON(http.StatusOK, map[string]any{
		"message": i18n.T(lang, doneKey),
		"stats":   h.stats(),
	})
}
