// Package discovery finds prompt panels on the local network with mDNS.
//
// A panel server advertises itself as a "_scrollprompt._tcp" service. The
// TXT records describe the screen it drives, so a companion app can size
// itself before connecting:
//
//	chars=16      display cells per line
//	lines=3       content lines per screen
//	profile=nanox device profile name
//
// # Usage Example
//
//	// Advertise a panel server on port 8765
//	adv, err := discovery.Advertise("desk", 8765, "nanox", layout)
//	if err != nil {
//	    return err
//	}
//	defer adv.Shutdown()
//
//	// Find panels for 3 seconds
//	panels, err := discovery.QuickScan()
//	for _, p := range panels {
//	    fmt.Println(p)
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Panels must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
