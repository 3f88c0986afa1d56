package i18n

import (
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

var (
	mu   sync.RWMutex
	lang string
)

var translations = map[string]map[string]string{
	"Count": {
		"pt": "Contagem",
		"es": "Cuenta",
		"ru": "Счёт",
	},
	"Auto mode": {
		"pt": "Modo automático",
		"es": "Modo automático",
		"ru": "Автоматический режим",
	},
	"Interval": {
		"pt": "Intervalo",
		"es": "Intervalo",
		"ru": "Интервал",
	},
	"Next tick in": {
		"pt": "Próximo tique em",
		"es": "Próximo tic en",
		"ru": "Следующий шаг через",
	},
	"ON": {
		"pt": "LIGADO",
		"es": "ACTIVADO",
		"ru": "ВКЛ",
	},
	"OFF": {
		"pt": "DESLIGADO",
		"es": "DESACTIVADO",
		"ru": "ВЫКЛ",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"Auto": {
		"pt": "Auto",
		"es": "Auto",
		"ru": "Авто",
	},
	"Set Interval (ms)": {
		"pt": "Definir intervalo (ms)",
		"es": "Definir intervalo (ms)",
		"ru": "Задать интервал (мс)",
	},
	"Interval in milliseconds": {
		"pt": "Intervalo em milissegundos",
		"es": "Intervalo en milisegundos",
		"ru": "Интервал в миллисекундах",
	},
	"Apply Interval": {
		"pt": "Aplicar intervalo",
		"es": "Aplicar intervalo",
		"ru": "Применить интервал",
	},
	"Help": {
		"pt": "Ajuda",
		"es": "Ayuda",
		"ru": "Справка",
	},
	"Close": {
		"pt": "Fechar",
		"es": "Cerrar",
		"ru": "Закрыть",
	},
}

func init() {
	SetLang(detect(os.Getenv("COUNTER_LANG"), locale.GetLocales))
}

// detect picks the UI language: the COUNTER_LANG override when set,
// otherwise the first system locale.
func detect(forced string, locales func() ([]string, error)) string {
	if forced = strings.TrimSpace(forced); forced != "" {
		return Match(forced)
	}

	userLocales, err := locales()
	if err != nil || len(userLocales) == 0 {
		return "en"
	}
	return Match(userLocales[0])
}

// Match maps a system locale such as "pt-BR" to a supported language.
func Match(userLocale string) string {
	switch {
	case strings.HasPrefix(userLocale, "pt"):
		return "pt"
	case strings.HasPrefix(userLocale, "es"):
		return "es"
	case strings.HasPrefix(userLocale, "ru"):
		return "ru"
	}
	return "en"
}

func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// SetLang forces the language used by T.
func SetLang(l string) {
	mu.Lock()
	lang = l
	mu.Unlock()
}
