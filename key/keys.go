// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 16

// Catalog API - these keys locate the upstream show catalog and shape default queries against it.
const (
	CatalogBaseURL      = "catalog.base_url"
	CatalogDefaultQuery = "catalog.default_query"
)

// Search history
const (
	SearchQuerySuggestions = "search.query_suggestions"
)

// Networking - these keys tune the shared HTTP transport.
const (
	NetworkTimeout = "network.timeout"
)

// Web Server - these keys configure the server-rendered browser frontend.
const (
	ServerAddress     = "server.address"
	ServerOpenBrowser = "server.open_browser"
	ServerMode        = "server.mode"
)

// Branding
const (
	SiteTitle = "site.title"
)

// Terminal User Interface (TUI) - these keys define the interactive terminal browser's styling.
const (
	TUISearchPromptString = "tui.search_prompt"
	TUIItemSpacing        = "tui.item_spacing"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
