package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

const StatusPath = "/status"

// CheckConnection probes the server at address with the given key.
// It returns the server descriptor and true when the server answered
// successfully, or nil and false on any failure.
func CheckConnection(address, key string) (*Status, bool) {
	return CheckConnectionWith(&http.Client{}, address, key)
}

// CheckConnectionWith is CheckConnection using a custom HTTP client.
func CheckConnectionWith(httpClient *http.Client, address, key string) (*Status, bool) {
	req, err := http.NewRequest(http.MethodGet, strings.TrimSuffix(address, "/")+StatusPath, nil)
	if err != nil {
		return nil, false
	}
	req.Header.Set("Authorization", "bearer "+key)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false
	}

	var status Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, false
	}
	if !status.Success {
		return nil, false
	}

	return &status, true
}

// NormalizeAddress turns user input into a server base URL: it strips one
// trailing slash and defaults the scheme to http.
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	address = strings.TrimSuffix(address, "/")
	if address == "" {
		return ""
	}
	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "http://" + address
	}
	return address
}
