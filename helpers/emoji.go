package helpers

import (
	"regexp"
	"strings"
	"sync"

	"github.com/kyokomi/emoji/v2"
)

var (
	emojiInit sync.Once
	emojis    map[string]string

	emojiCodeRe = regexp.MustCompile(`:[a-zA-Z0-9_+\-]+:`)
)

// Emojify replaces emoji codes such as ":rocket:" in s with the emoji
// itself. Unknown codes are left as is.
func Emojify(s string) string {
	if !strings.Contains(s, ":") {
		return s
	}
	emojiInit.Do(initEmoji)
	return emojiCodeRe.ReplaceAllStringFunc(s, func(code string) string {
		if e, ok := emojis[code]; ok {
			return e
		}
		return code
	})
}

func initEmoji() {
	codes := emoji.CodeMap()
	emojis = make(map[string]string, len(codes))
	for k, v := range codes {
		emojis[k] = strings.TrimSpace(v)
	}
}
