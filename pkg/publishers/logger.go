package publishers

// Logger is the structured logging surface sinks report deliveries through.
type Logger interface {
	InfoObj(msg, key string, obj any)
	DebugObj(msg, key string, obj any)
	WarnObj(msg, key string, obj any)
	ErrorObj(msg, key string, obj any)
}

type noopLogger struct{}

func (noopLogger) InfoObj(string, string, any)  {}
func (noopLogger) DebugObj(string, string, any) {}
func (noopLogger) WarnObj(string, string, any)  {}
func (noopLogger) ErrorObj(string, string, any) {}

func ensureLogger(log Logger) Logger {
	if log == nil {
		return noopLogger{}
	}
	return log
}

// logDelivery records one delivery attempt under "publisher_<type>_delivery"
// or "publisher_<type>_error". extra fields are merged into the entry.
func logDelivery(log Logger, p Publisher, evt Event, err error, extra map[string]any) {
	fields := map[string]any{
		"publisher_id":    p.ID(),
		"event_id":        evt.ID,
		"notification_id": evt.Notification.ID,
	}
	for k, v := range extra {
		fields[k] = v
	}
	if err != nil {
		fields["error"] = err.Error()
		log.ErrorObj(p.Type()+" publisher send failed", "publisher_"+p.Type()+"_error", fields)
		return
	}
	log.DebugObj(p.Type()+" publisher delivered event", "publisher_"+p.Type()+"_delivery", fields)
}
