package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected", "allowed" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			msg = "型が不正です"
		case "required":
			msg = "必須プロパティが不足しています"
		case "unknown_key":
			msg = "未知のキーです"
		case "duplicate_key":
			msg = "キーが重複しています"
		case "invalid_literal":
			msg = "リテラル値が一致しません"
		case "invalid_format":
			msg = "形式が不正です"
		case "invalid_enum":
			msg = "列挙値が不正です"
		case "discriminator_missing":
			msg = "判別フィールドがありません"
		case "discriminator_unknown":
			msg = "判別値が不明です"
		case "discriminator_mismatch":
			msg = "判別値と内容が一致しません"
		case "refinement":
			msg = "値の整合性チェックに失敗しました"
		case "domain_range":
			msg = "値が範囲外です"
		case "parse_error":
			msg = "解析エラー"
		case "truncated":
			msg = "打ち切られました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			msg = "invalid type"
		case "required":
			msg = "required property missing"
		case "unknown_key":
			msg = "unknown key"
		case "duplicate_key":
			msg = "duplicate key"
		case "invalid_literal":
			msg = "invalid literal value"
		case "invalid_format":
			msg = "invalid format"
		case "invalid_enum":
			msg = "invalid enum value"
		case "discriminator_missing":
			msg = "discriminator missing"
		case "discriminator_unknown":
			msg = "unrecognized discriminator value"
		case "discriminator_mismatch":
			msg = "discriminator does not match payload"
		case "refinement":
			msg = "refinement failed"
		case "domain_range":
			msg = "value out of range"
		case "parse_error":
			msg = "parse error"
		case "truncated":
			msg = "truncated"
		}
	}
	if msg == "" {
		msg = code
	}
	if a := data["allowed"]; a != "" {
		msg += ": expected one of " + a
	} else if e := data["expected"]; e != "" {
		msg += ": expected " + e
	}
	if d := data["detail"]; d != "" {
		msg += " (" + d + ")"
	}
	return msg
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

// List renders allowed values for the "allowed" data key.
func List(values []string) string { return "[" + strings.Join(values, ", ") + "]" }
