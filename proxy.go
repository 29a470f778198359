package main

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
)

// ProxyManager hands out egress proxies for session negotiation clients.
// The proxy file is optional: an empty manager always yields "" which means
// direct egress.
type ProxyManager struct {
	proxies []string
	index   int
	mu      sync.Mutex
}

// NewProxyManager loads proxies from path. A missing file is not an error,
// it just leaves the manager empty.
func NewProxyManager(path string) (*ProxyManager, error) {
	pm := &ProxyManager{}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return pm, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		proxyURL, ok := parseProxyLine(scanner.Text())
		if !ok {
			continue
		}
		pm.proxies = append(pm.proxies, proxyURL)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return pm, nil
}

// parseProxyLine normalizes a proxy entry to http://[user:pass@]host:port.
// Supported formats:
//   - ip:port
//   - ip:port:username:password
//   - http(s)://[username:password@]ip:port
func parseProxyLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}

	if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
		parsed, err := url.Parse(line)
		if err != nil || parsed.Host == "" {
			return "", false
		}
		if parsed.User != nil {
			password, _ := parsed.User.Password()
			return fmt.Sprintf("http://%s:%s@%s", parsed.User.Username(), password, parsed.Host), true
		}
		return fmt.Sprintf("http://%s", parsed.Host), true
	}

	parts := strings.Split(line, ":")
	switch len(parts) {
	case 2:
		return fmt.Sprintf("http://%s:%s", parts[0], parts[1]), true
	case 4:
		return fmt.Sprintf("http://%s:%s@%s:%s", parts[2], parts[3], parts[0], parts[1]), true
	}
	return "", false
}

// Next returns the next proxy in round-robin order, or "" when none are loaded.
func (pm *ProxyManager) Next() string {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if len(pm.proxies) == 0 {
		return ""
	}
	proxy := pm.proxies[pm.index]
	pm.index = (pm.index + 1) % len(pm.proxies)
	return proxy
}

// Count reports how many proxies were loaded.
func (pm *ProxyManager) Count() int {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	return len(pm.proxies)
}
