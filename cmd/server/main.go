package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"hoacuong/config"
	"hoacuong/pkg/ai"
	"hoacuong/pkg/i18n"
	"hoacuong/pkg/middleware"
	"hoacuong/pkg/store"
	"hoacuong/router"

	// Area
	areaCtrlImp "hoacuong/pkg/area/controllerImp"
	areaRepoImp "hoacuong/pkg/area/repositoryImp"
	areaSvcImp "hoacuong/pkg/area/serviceImp"

	// Farmer
	farmerCtrlImp "hoacuong/pkg/farmer/controllerImp"
	farmerRepoImp "hoacuong/pkg/farmer/repositoryImp"
	farmerSvcImp "hoacuong/pkg/farmer/serviceImp"

	// Purchase
	purchaseCtrlImp "hoacuong/pkg/purchase/controllerImp"
	purchaseRepoImp "hoacuong/pkg/purchase/repositoryImp"
	purchaseSvcImp "hoacuong/pkg/purchase/serviceImp"

	// Dashboard, insights, settings, health
	insightCtrlImp "hoacuong/pkg/ai/controllerImp"
	healthCtrlImp "hoacuong/pkg/health/controllerImp"
	reportCtrlImp "hoacuong/pkg/report/controllerImp"
	settingsCtrlImp "hoacuong/pkg/settings/controllerImp"
)

func main() {
	// 1) Config + logging
	cfg := config.Load()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(cfg.Level())
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		logrus.WithError(err).Warnf("unknown timezone %q, keeping system default", cfg.Timezone)
	}
	if i18n.Supported(cfg.Lang) {
		i18n.DefaultLang = cfg.Lang
	}

	// 2) Store, seeded on every start
	st := store.NewSeeded()
	st.OnChange(func(kind string) {
		a, f, p := st.Counts()
		logrus.WithFields(logrus.Fields{"kind": kind, "areas": a, "farmers": f, "purchases": p}).Debug("store changed")
	})

	// 3) Repos/Services/Controllers
	aRepo := areaRepoImp.New(st)
	fRepo := farmerRepoImp.New(st)
	pRepo := purchaseRepoImp.New(st)

	aCtrl := areaCtrlImp.New(areaSvcImp.NewAreaService(aRepo))
	fCtrl := farmerCtrlImp.New(farmerSvcImp.NewFarmerService(fRepo, aRepo))
	pCtrl := purchaseCtrlImp.New(purchaseSvcImp.NewPurchaseService(pRepo, fRepo), st)

	// 4) Gemini; an empty key degrades to the "configure a key" reply
	llm := ai.NewGemini(cfg.GeminiEndpoint, cfg.GeminiAPIKey, cfg.GeminiModel, i18n.DefaultLang)

	rCtrl := reportCtrlImp.New(st)
	iCtrl := insightCtrlImp.New(llm, st)
	sCtrl := settingsCtrlImp.New(st)
	hCtrl := healthCtrlImp.NewHealthCtrl(st, llm.Configured())

	// 5) Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = router.NewValidator()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, "Accept-Language"},
	}))
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Lang())

	r := router.New(e, aCtrl, fCtrl, pCtrl, rCtrl, iCtrl, sCtrl, hCtrl,
		middleware.PerMinute(cfg.AIRatePerMin).Middleware())

	// 6) Serve until SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.Infof("listening on :%s", cfg.Port)
		if err := r.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return r.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
