package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"hoacuong/pkg/ai"
	"hoacuong/pkg/i18n"
	"hoacuong/pkg/middleware"
	"hoacuong/pkg/store"
)

type InsightCtrl struct {
	llm ai.Client
	st  *store.Store
}

func New(llm ai.Client, st *store.Store) *InsightCtrl { return &InsightCtrl{llm: llm, st: st} }

type insightReq struct {
	Prompt string `json:"prompt"`
}

// Generate answers one question against a snapshot taken at request time.
// Concurrent requests are independent; nothing here touches the live store.
func (h *InsightCtrl) Generate(c echo.Context) error {
	lang := middleware.LangOf(c)
	var req insightReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": i18n.T(lang, i18n.KeyBadJSON)})
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": i18n.T(lang, i18n.KeyAIPromptEmpty)})
	}
	result := h.llm.GenerateInsights(c.Request().Context(), req.Prompt, h.st.Snapshot())
	return c.JSON(http.StatusOK, map[string]string{"result": result})
}

func (h *InsightCtrl) Suggestions(c echo.Context) error {
	chips := strings.Split(i18n.T(middleware.LangOf(c), i18n.KeySuggestions), "|")
	return c.JSON(http.StatusOK, chips)
}
