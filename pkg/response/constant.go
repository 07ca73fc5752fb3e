package response

import "procurement-srv/pkg/locale"

const (
	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Envelope messages per supported language.
var (
	successMessages = map[string]string{
		locale.EN: "Success",
		locale.VI: "Thành công",
		locale.JA: "成功",
	}
	internalErrorMessages = map[string]string{
		locale.EN: "Something went wrong",
		locale.VI: "Đã có lỗi xảy ra",
		locale.JA: "エラーが発生しました",
	}
)

func localizedMessage(messages map[string]string, lang string) string {
	if msg, ok := messages[lang]; ok {
		return msg
	}
	return messages[locale.DefaultLang]
}
