package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldAddr      = "addr"
	FieldKey       = "key"
	FieldDB        = "db"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("connected", logger.Fields("addr", addr, "db", 0))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
