package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hoacuong/pkg/middleware"
	"hoacuong/pkg/report"
	"hoacuong/pkg/store"
)

type ReportCtrl struct{ st *store.Store }

func New(st *store.Store) *ReportCtrl { return &ReportCtrl{st: st} }

func (h *ReportCtrl) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, report.BuildOverview(h.st.Snapshot(), middleware.LangOf(c)))
}
