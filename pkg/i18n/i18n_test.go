package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogsHaveSameKeys(t *testing.T) {
	for k := range vi {
		_, ok := en[k]
		assert.True(t, ok, "en is missing %s", k)
	}
	for k := range en {
		_, ok := vi[k]
		assert.True(t, ok, "vi is missing %s", k)
	}
}

func TestTFallbacks(t *testing.T) {
	assert.Equal(t, "Vùng: VN-DL-001", T(LangVI, KeyAreaLabel, "VN-DL-001"))
	assert.Equal(t, vi[KeyNotFound], T("fr", KeyNotFound))
	assert.Equal(t, "no.such.key", T(LangEN, "no.such.key"))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("vi"))
	assert.True(t, Supported("en"))
	assert.False(t, Supported("de"))
}

func TestMatch(t *testing.T) {
	cases := map[string]string{
		"en-US,en;q=0.9":    LangEN,
		"vi-VN,vi;q=0.9":    LangVI,
		"fr-FR, en;q=0.5":   LangEN,
		"ja":                DefaultLang,
		"":                  DefaultLang,
		"not a valid ;;q=x": DefaultLang,
	}
	for header, want := range cases {
		assert.Equal(t, want, Match(header), header)
	}
}
