package services

import (
	"github.com/denmor86/interview-market/internal/logger"
)

// audit - запись о переходе финансового состояния
func audit(entity, id, from, to string, keysAndValues ...interface{}) {
	fields := append([]interface{}{"entity", entity, "id", id, "from", from, "to", to}, keysAndValues...)
	logger.Infow("audit", fields...)
}

// securityEvent - несовпадение подписи
func securityEvent(source string, keysAndValues ...interface{}) {
	fields := append([]interface{}{"security_event", true, "source", source}, keysAndValues...)
	logger.Warnw("signature mismatch", fields...)
}
