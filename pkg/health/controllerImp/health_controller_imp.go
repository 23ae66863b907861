package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hoacuong/pkg/store"
)

var appStart = time.Now()

type HealthCtrl struct {
	st           *store.Store
	aiConfigured bool
}

func NewHealthCtrl(st *store.Store, aiConfigured bool) *HealthCtrl {
	return &HealthCtrl{st: st, aiConfigured: aiConfigured}
}

// Health always answers 200 when the process is serving; a missing AI key
// is reported but does not fail the check.
func (h *HealthCtrl) Health(c echo.Context) error {
	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	storeOK := h.st != nil
	counts := map[string]int{}
	if storeOK {
		a, f, p := h.st.Counts()
		counts = map[string]int{"areas": a, "farmers": f, "purchases": p}
	}

	ai := sub{OK: h.aiConfigured}
	if !h.aiConfigured {
		ai.Err = "api key not configured"
	}

	status := http.StatusOK
	if !storeOK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": storeOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"store": counts,
			"ai":    ai,
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
