package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, "pt", Match("pt-BR"))
	assert.Equal(t, "es", Match("es-AR"))
	assert.Equal(t, "ru", Match("ru"))
	assert.Equal(t, "en", Match("de-DE"))
	assert.Equal(t, "en", Match(""))
}

func TestT(t *testing.T) {
	prev := GetLang()
	t.Cleanup(func() { SetLang(prev) })

	SetLang("pt")
	assert.Equal(t, "Resetar", T("Reset"))
	assert.Equal(t, "Aplicar intervalo", T("Apply Interval"))

	SetLang("en")
	assert.Equal(t, "Reset", T("Reset"))

	SetLang("es")
	assert.Equal(t, "not translated", T("not translated"))
}

func TestEveryKeyHasAllLanguages(t *testing.T) {
	for key, byLang := range translations {
		for _, l := range []string{"pt", "es", "ru"} {
			assert.NotEmpty(t, byLang[l], "%q missing %s", key, l)
		}
	}
}

func TestDetect(t *testing.T) {
	system := func(locs ...string) func() ([]string, error) {
		return func() ([]string, error) { return locs, nil }
	}
	failing := func() ([]string, error) { return nil, errors.New("no locale") }

	assert.Equal(t, "pt", detect("pt-BR", system("ru-RU")))
	assert.Equal(t, "es", detect(" es ", failing))
	assert.Equal(t, "en", detect("fr", system("pt-BR")))
	assert.Equal(t, "ru", detect("", system("ru-RU", "en-US")))
	assert.Equal(t, "en", detect("", system()))
	assert.Equal(t, "en", detect("", failing))
}
