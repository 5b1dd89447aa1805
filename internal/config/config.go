package config // package config loads application configuration from environment variables

import (
    "log" // log is used to report configuration errors and halt execution
    "os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The admin panel owns no data of its own; the
// backend it talks to is selected by APIBaseURL and everything else
// configures how sessions are kept and where the server listens.
type Config struct {
    Env           string // application environment (e.g. "dev", "prod")
    Port          string // HTTP port to listen on
    APIBaseURL    string // base URL of the Sendit backend API
    JWTSecret     string // secret used to sign the session cookie
    SessionCookie string // name of the session cookie
    AMQPURL       string // AMQP broker URL for activity events (empty disables publishing)
}

// Load reads configuration values from environment variables and returns a
// Config.  JWT_SECRET is the only required variable and a missing value
// causes the program to exit with a fatal log message; everything else has
// a development default.  The default API base URL points at a local
// backend; deployments override API_BASE_URL (see .env.example for the
// hosted endpoint).
func Load() Config {
    return Config{
        Env:           getenv("APP_ENV", "dev"),                        // environment (dev/test/prod)
        Port:          getenv("APP_PORT", "8080"),                      // port to bind the HTTP server
        APIBaseURL:    getenv("API_BASE_URL", "http://localhost:3000"), // backend API base URL
        JWTSecret:     must("JWT_SECRET"),                              // secret for signing session cookies
        SessionCookie: getenv("SESSION_COOKIE", "sendit_session"),      // cookie carrying the session JWT
        AMQPURL:       os.Getenv("AMQP_URL"),                           // optional activity-event broker
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// getenv retrieves an environment variable, falling back to def when the
// variable is unset or empty.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}
