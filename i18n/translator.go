package i18n

import "sync"

// Translator retrieves localized message prefixes for error codes.
// data provides optional metadata to embed in the message (for example,
// "property").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "REQUIRED":
			return "必須パラメータが不足しています"
		case "UNSUPPORTED":
			return "未対応のパラメータです"
		case "VALUE":
			return "パラメータの値が不正です"
		default:
			return "パラメータで不明なエラーが発生しました"
		}
	default: // "en"
		switch code {
		case "REQUIRED":
			return "Missing required parameter"
		case "UNSUPPORTED":
			return "Unsupported parameter"
		case "VALUE":
			return "Illegal value for parameter"
		default:
			return "Unknown error found for parameter"
		}
	}
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	mu.Lock()
	defer mu.Unlock()
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// Dictionary returns the built-in Translator for lang without installing it.
func Dictionary(lang string) Translator {
	if lang != "ja" {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
