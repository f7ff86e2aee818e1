package config // package config loads application configuration from environment variables

import (
	"os" // os provides access to environment variables
	"time"

	"github.com/joho/godotenv" // godotenv reads a local .env file during development
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a default so the service can run
// standalone — drafts only, no remote backend — with an empty environment;
// setting BACKEND_ENDPOINT and BACKEND_PROJECT switches record persistence
// to the hosted record gateway.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	DraftStorePath string // file path of the local draft store database
	BusinessPrefix string // key namespace for draft store collections

	BackendEndpoint string // base URL of the remote record gateway ("" = standalone)
	BackendProject  string // project identifier sent with every gateway call
	BackendKey      string // server API key (optional)

	DatabaseID          string // document database identifier at the backend
	BookingsCollection  string // bookings collection identifier
	OrdersCollection    string // orders collection identifier
	CustomersCollection string // customers collection identifier
	BucketID            string // storage bucket for order attachments

	SettingsPath string // path of the YAML business settings file (optional)

	DashboardRefresh time.Duration // interval between background dashboard recomputations
	RequestTimeout   time.Duration // per-call timeout for gateway and store operations
}

// Load reads configuration values from the environment and returns a
// Config.  A .env file in the working directory is read first when
// present; real environment variables take precedence over it.
func Load() Config {
	_ = godotenv.Load() // a missing .env file is not an error

	return Config{
		Env:  getenv("APP_ENV", "dev"),   // environment (dev/test/prod)
		Port: getenv("APP_PORT", "8080"), // port to bind the HTTP server

		DraftStorePath: getenv("DRAFT_STORE_PATH", "laundry.db"), // local draft store file
		BusinessPrefix: getenv("BUSINESS_PREFIX", "joacia"),      // draft key namespace

		BackendEndpoint: os.Getenv("BACKEND_ENDPOINT"), // empty keeps the service standalone
		BackendProject:  os.Getenv("BACKEND_PROJECT"),
		BackendKey:      os.Getenv("BACKEND_API_KEY"),

		DatabaseID:          getenv("BACKEND_DATABASE_ID", "laundry"),
		BookingsCollection:  getenv("BACKEND_BOOKINGS_COLLECTION", "bookings"),
		OrdersCollection:    getenv("BACKEND_ORDERS_COLLECTION", "orders"),
		CustomersCollection: getenv("BACKEND_CUSTOMERS_COLLECTION", "customers"),
		BucketID:            getenv("BACKEND_BUCKET_ID", "order-images"),

		SettingsPath: getenv("SETTINGS_PATH", "settings.yaml"),

		DashboardRefresh: envDur("DASHBOARD_REFRESH", 30*time.Second), // dashboard auto-refresh cadence
		RequestTimeout:   envDur("REQUEST_TIMEOUT", 5*time.Second),
	}
}
