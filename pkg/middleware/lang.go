package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hoacuong/pkg/i18n"
)

const (
	langKey    = "lang"
	langCookie = "LANG"
)

// Lang resolves the display language: ?lang=, then the LANG cookie, then
// Accept-Language. An explicit ?lang= is remembered in the cookie.
func Lang() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := ""
			if q := c.QueryParam("lang"); q != "" && i18n.Supported(q) {
				lang = q
				c.SetCookie(&http.Cookie{Name: langCookie, Value: q, Path: "/"})
			}
			if lang == "" {
				if ck, err := c.Cookie(langCookie); err == nil && i18n.Supported(ck.Value) {
					lang = ck.Value
				}
			}
			if lang == "" {
				if h := c.Request().Header.Get("Accept-Language"); h != "" {
					lang = i18n.Match(h)
				} else {
					lang = i18n.DefaultLang
				}
			}
			c.Set(langKey, lang)
			return next(c)
		}
	}
}

// LangOf returns the language chosen for the request.
func LangOf(c echo.Context) string {
	if v, ok := c.Get(langKey).(string); ok && v != "" {
		return v
	}
	return i18n.DefaultLang
}
