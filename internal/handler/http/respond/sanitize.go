package respond

import (
	"regexp"
)

var (
	// anthropicKeyPattern must run before openaiKeyPattern.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)
	googleKeyPattern    = regexp.MustCompile(`AIza[0-9A-Za-z_-]{20,}`)

	// keyParamPattern masks credentials passed as a query parameter.
	keyParamPattern = regexp.MustCompile(`([?&]key=)[^&\s"]+`)
)

// SanitizeError returns err's message with API keys masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = googleKeyPattern.ReplaceAllString(msg, "AIza****")
	msg = keyParamPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
