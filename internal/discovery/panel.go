package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/muurk/scrollprompt/internal/prompt"
)

// TXT record keys
const (
	TxtChars   = "chars"
	TxtLines   = "lines"
	TxtProfile = "profile"
)

// Panel represents a discovered panel server
type Panel struct {
	// Instance is the advertised instance name (e.g., "desk")
	Instance string

	// Hostname is the mDNS hostname (e.g., "workstation.local.")
	Hostname string

	// IP is the address to connect to, IPv4 preferred
	IP string

	// Port is the HTTP port serving /ws
	Port int

	// Metadata contains the TXT record data
	Metadata map[string]string

	// DiscoveredAt is when the panel was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the panel
func (p *Panel) String() string {
	return fmt.Sprintf("Panel %s (%s) at %s", p.Instance, p.Hostname, net.JoinHostPort(p.IP, strconv.Itoa(p.Port)))
}

// WebSocketURL returns the URL a panel client dials
func (p *Panel) WebSocketURL() string {
	return fmt.Sprintf("ws://%s/ws", net.JoinHostPort(p.IP, strconv.Itoa(p.Port)))
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (p *Panel) GetMetadata(key string) string {
	if p.Metadata == nil {
		return ""
	}
	return p.Metadata[key]
}

// Profile returns the advertised profile name
func (p *Panel) Profile() string {
	return p.GetMetadata(TxtProfile)
}

// Layout returns the advertised screen geometry
func (p *Panel) Layout() (prompt.Layout, error) {
	chars, err := strconv.Atoi(p.GetMetadata(TxtChars))
	if err != nil {
		return prompt.Layout{}, fmt.Errorf("panel %s: invalid %s record: %w", p.Instance, TxtChars, err)
	}
	lines, err := strconv.Atoi(p.GetMetadata(TxtLines))
	if err != nil {
		return prompt.Layout{}, fmt.Errorf("panel %s: invalid %s record: %w", p.Instance, TxtLines, err)
	}

	layout := prompt.DefaultLayout()
	layout.CharsPerLine = chars
	layout.LinesPerPage = lines
	if err := layout.Validate(); err != nil {
		return prompt.Layout{}, fmt.Errorf("panel %s: %w", p.Instance, err)
	}
	return layout, nil
}

// TextRecords builds the TXT records advertised for layout
func TextRecords(profile string, layout prompt.Layout) []string {
	records := []string{
		fmt.Sprintf("%s=%d", TxtChars, layout.CharsPerLine),
		fmt.Sprintf("%s=%d", TxtLines, layout.LinesPerPage),
	}
	if profile != "" {
		records = append(records, fmt.Sprintf("%s=%s", TxtProfile, profile))
	}
	return records
}
