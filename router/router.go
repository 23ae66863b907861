package router

import (
	"github.com/labstack/echo/v4"

	"hoacuong/pkg/area/controller"
	farmerCtrl "hoacuong/pkg/farmer/controller"
	purchaseCtrl "hoacuong/pkg/purchase/controller"
)

type dashboardCtrl interface{ Dashboard(echo.Context) error }

type insightCtrl interface {
	Generate(echo.Context) error
	Suggestions(echo.Context) error
}

type settingsCtrl interface {
	Reset(echo.Context) error
	Clear(echo.Context) error
	Stats(echo.Context) error
}

func New(
	e *echo.Echo,
	areaCtrl controller.AreaController,
	farmers farmerCtrl.FarmerController,
	purchases purchaseCtrl.PurchaseController,
	reportCtrl dashboardCtrl,
	aiCtrl insightCtrl,
	setCtrl settingsCtrl,
	healthCtrl interface{ Health(echo.Context) error },
	aiLimit echo.MiddlewareFunc,
) *echo.Echo {
	if e.Validator == nil {
		e.Validator = NewValidator()
	}
	e.GET("/health", healthCtrl.Health)

	api := e.Group("")
	api.GET("/dashboard", reportCtrl.Dashboard)

	api.GET("/areas", areaCtrl.List)
	api.POST("/areas", areaCtrl.Create)
	api.GET("/areas/:id", areaCtrl.Get)
	api.PATCH("/areas/:id", areaCtrl.Update)
	api.DELETE("/areas/:id", areaCtrl.Delete)

	api.GET("/farmers", farmers.List)
	api.POST("/farmers", farmers.Create)
	api.GET("/farmers/:id", farmers.Get)
	api.PATCH("/farmers/:id", farmers.Update)
	api.DELETE("/farmers/:id", farmers.Delete)

	// export is registered before :id so the static segment wins
	api.GET("/purchases/export", purchases.Export)
	api.GET("/purchases", purchases.List)
	api.POST("/purchases", purchases.Create)
	api.GET("/purchases/:id", purchases.Get)
	api.DELETE("/purchases/:id", purchases.Delete)

	ins := e.Group("/insights")
	ins.GET("/suggestions", aiCtrl.Suggestions)
	if aiLimit != nil {
		ins.POST("", aiCtrl.Generate, aiLimit)
	} else {
		ins.POST("", aiCtrl.Generate)
	}

	st := e.Group("/settings")
	st.GET("/stats", setCtrl.Stats)
	st.POST("/reset", setCtrl.Reset)
	st.POST("/clear", setCtrl.Clear)
	return e
}
