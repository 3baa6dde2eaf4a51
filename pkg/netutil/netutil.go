package netutil

import (
	"fmt"
	"net"
	"regexp"
	"sort"
	"time"
)

// FreePort asks the OS for an available TCP port on localhost and returns
// it. The listener used for discovery is closed before returning, so the
// port is free at that moment but not reserved; grab it promptly.
func FreePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, fmt.Errorf("netutil: find free port: %w", err)
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// FindIPAddresses returns the local interface addresses whose textual form
// matches the regular expression, sorted and de-duplicated.
//
//	addrs, err := netutil.FindIPAddresses(`^192\.168\.1\.\d+$`)
func FindIPAddresses(pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("netutil: invalid pattern %q: %w", pattern, err)
	}

	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("netutil: list interfaces: %w", err)
	}

	seen := make(map[string]struct{})
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			// An interface that cannot report addresses is skipped, not
			// fatal: the rest of the system is still worth scanning.
			continue
		}
		for _, addr := range addrs {
			var ip net.IP
			switch a := addr.(type) {
			case *net.IPNet:
				ip = a.IP
			case *net.IPAddr:
				ip = a.IP
			}
			if ip == nil {
				continue
			}
			if s := ip.String(); re.MatchString(s) {
				seen[s] = struct{}{}
			}
		}
	}

	matches := make([]string, 0, len(seen))
	for s := range seen {
		matches = append(matches, s)
	}
	sort.Strings(matches)
	return matches, nil
}

// IsPortOpen reports whether a TCP connection to host:port succeeds within
// the timeout.
func IsPortOpen(host string, port int, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, fmt.Sprintf("%d", port)), timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
