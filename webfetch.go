// Package webfetch provides a robots-aware fetch-and-simplify service
// exposed as a Model Context Protocol tool. It retrieves a URL, converts
// HTML to readable markdown, and returns a paginated window of the result.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, readability/, htmltomarkdown/).
package webfetch

// Default user agents used when no custom override is configured.
const (
	DefaultUserAgentAutonomous = "ModelContextProtocol/1.0 (Autonomous; +https://github.com/modelcontextprotocol/servers)"
	DefaultUserAgentManual     = "ModelContextProtocol/1.0 (User-Specified; +https://github.com/modelcontextprotocol/servers)"
)

// UserAgents holds the user agent strings for autonomous (tool-initiated)
// and manual (user-initiated) fetches. Resolved once at startup.
type UserAgents struct {
	Autonomous string
	Manual     string
}

// NewUserAgents returns the user agents to use. A non-empty custom value
// overrides both defaults.
func NewUserAgents(custom string) UserAgents {
	if custom != "" {
		return UserAgents{Autonomous: custom, Manual: custom}
	}
	return UserAgents{
		Autonomous: DefaultUserAgentAutonomous,
		Manual:     DefaultUserAgentManual,
	}
}
