package database

import (
	"net/url"
	"strings"
)

// ConstructDatabaseURL points a server URL at databaseName, keeping the
// credentials and query parameters and defaulting sslmode to disable.
// A base URL that does not parse is returned unchanged.
func ConstructDatabaseURL(baseURL, databaseName string) string {
	if databaseName == "" {
		return baseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}

	u.Path = "/" + databaseName
	u.RawPath = ""

	if !u.Query().Has("sslmode") {
		u.RawQuery = strings.TrimPrefix(u.RawQuery+"&sslmode=disable", "&")
	}

	return u.String()
}
