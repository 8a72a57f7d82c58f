// Package constants provides shared constants for the solar-sizing application.
package constants

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatXLSX is the spreadsheet report format
	OutputFormatXLSX = "xlsx"

	// OutputFormatPDF is the printable report format
	OutputFormatPDF = "pdf"
)

// OutputFormats lists every supported output format.
var OutputFormats = []string{
	OutputFormatPretty,
	OutputFormatCSV,
	OutputFormatJSON,
	OutputFormatXLSX,
	OutputFormatPDF,
}

// Display defaults
const (
	// DefaultLocale is the BCP 47 tag used to format numbers for display
	DefaultLocale = "es-CO"

	// DefaultCurrency is the currency code shown next to monetary amounts
	DefaultCurrency = "COP"

	// DisplayDecimals is the number of decimals shown for power, area and payback
	DisplayDecimals = 2
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultDotEnvFile is loaded into the environment before configuration is read
	DefaultDotEnvFile = ".env"

	// EnvPrefix prefixes environment overrides, e.g. SOLAR_OUTPUT_FORMAT
	EnvPrefix = "SOLAR"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (16 KB)
	DefaultMaxBodySizeBytes int64 = 16 * 1024

	// DefaultRateLimitPerSecond is the default sustained request rate per client
	DefaultRateLimitPerSecond = 10.0

	// DefaultRateLimitBurst is the default request burst per client
	DefaultRateLimitBurst = 20
)
