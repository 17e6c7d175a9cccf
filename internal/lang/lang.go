package lang

import (
	"fmt"
	"log"

	"github.com/Ozziff/pivnoi-vopros-bot/internal/config"
)

var lang = "ru"

func SetupLang(cfg *config.Config) {
	lang = cfg.Lang
}

func GetMessage(id MessageID, args ...interface{}) string {
	if m, ok := messages[id]; ok {
		msg, ok := m[lang]
		if !ok {
			msg, ok = m["ru"]
		}
		if ok {
			// Texts may contain literal percent signs; format only on demand.
			if len(args) > 0 {
				return fmt.Sprintf(msg, args...)
			}
			return msg
		}
	}
	log.Printf("Message not found for ID: %s", id)
	return "Message not found"
}
