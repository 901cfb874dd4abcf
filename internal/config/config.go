package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for costs.
type Config struct {
    Env        string // application environment (e.g. "dev", "prod")
    Port       string // HTTP port to listen on (defaults to 4000)
    DBUser     string // database username
    DBPass     string // database password (optional)
    DBHost     string // database host address
    DBPort     string // database port number
    DBName     string // database name
    JWTSecret  string // secret used to sign JWTs (may be empty, see below)
    BcryptCost int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
//
// JWT_SECRET is intentionally not required here: an empty secret is a
// server misconfiguration that must surface as an HTTP 500 on the requests
// that need it, so that it stays distinguishable from a bad client token.
// It is never silently defaulted.
func Load() Config {
    return Config{
        Env:        getenvDefault("APP_ENV", "dev"),   // environment (dev/test/prod)
        Port:       getenvDefault("APP_PORT", "4000"), // port to bind the HTTP server
        DBUser:     must("DB_USER"),                   // database user
        DBPass:     os.Getenv("DB_PASS"),              // database password (empty allowed)
        DBHost:     must("DB_HOST"),                   // database host
        DBPort:     must("DB_PORT"),                   // database port
        DBName:     must("DB_NAME"),                   // database name
        JWTSecret:  os.Getenv("JWT_SECRET"),           // signing secret (empty -> 500 at request time)
        BcryptCost: intDefault("BCRYPT_COST", 10),     // bcrypt cost factor
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

// getenvDefault returns the value of an environment variable or a default
// when the variable is unset or empty.
func getenvDefault(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// intDefault reads an integer environment variable, falling back to the
// given default when unset.  An unparseable value is a fatal error.
func intDefault(key string, def int) int {
    s := os.Getenv(key)
    if s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
