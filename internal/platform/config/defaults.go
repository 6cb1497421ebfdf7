package config

const (
	defaultServerPort = 8080

	// defaultUploadMaxBytes caps multipart upload request bodies at 20 MB.
	defaultUploadMaxBytes = 20 * 1000 * 1000
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"db.path":         "data/todolist.db",
		"db.busy_timeout": "5s",

		"upload.max_request_bytes": defaultUploadMaxBytes,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
