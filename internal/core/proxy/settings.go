// Package proxy holds egress proxy settings for outbound vendor API calls.
// Courier tracking APIs rate-limit by source IP, so production deployments
// route polling traffic through a shared egress proxy.
package proxy

import "fmt"

// Settings contains the egress proxy configuration.
type Settings struct {
	Enabled  bool
	Hostname string
	Port     int
	Username string
	Password string
}

// HasProxy returns true if the proxy is enabled and configured.
func (p Settings) HasProxy() bool {
	return p.Enabled && p.Hostname != "" && p.Port > 0
}

// BaseURL returns the proxy URL without credentials
// (e.g., "http://egress.internal:3128").
func (p Settings) BaseURL() string {
	if !p.HasProxy() {
		return ""
	}
	return fmt.Sprintf("http://%s:%d", p.Hostname, p.Port)
}

// FullURL returns the full proxy URL with credentials, for the HTTP client.
func (p Settings) FullURL() string {
	if !p.HasProxy() {
		return ""
	}
	if p.Username != "" && p.Password != "" {
		return fmt.Sprintf("http://%s:%s@%s:%d", p.Username, p.Password, p.Hostname, p.Port)
	}
	return p.BaseURL()
}
