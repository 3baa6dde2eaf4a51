// Package netutil probes the local network environment: free-port
// discovery, interface address enumeration by pattern, and TCP port
// reachability checks.
package netutil
