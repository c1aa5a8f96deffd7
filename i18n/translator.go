package i18n

// Translator retrieves localized diagnostics for coercion error codes.
// data provides the names embedded in the message (for example, "type" or
// "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "non_null":
			return "非 null 型 " + data["type"] + " に null は指定できません"
		case "scalar", "invalid_enum":
			return data["type"] + " 型の値ではありません"
		case "invalid_type":
			return data["type"] + " 型にはオブジェクトを指定してください"
		case "required":
			return "必須フィールド " + data["field"] + " (" + data["type"] + ") が不足しています"
		case "unknown_field":
			return "フィールド '" + data["field"] + "' は " + data["type"] + " 型に定義されていません"
		case "max_depth":
			return "ネストが深すぎます"
		}
	default: // "en"
		switch code {
		case "non_null":
			return "Expected non-nullable type " + data["type"] + " not to be null."
		case "scalar", "invalid_enum":
			return "Expected type " + data["type"] + "."
		case "invalid_type":
			return "Expected type " + data["type"] + " to be an object."
		case "required":
			return "Field " + data["field"] + " of required type " + data["type"] + " was not provided."
		case "unknown_field":
			return "Field '" + data["field"] + "' is not defined by type " + data["type"] + "."
		case "max_depth":
			return "maximum coercion depth exceeded"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
