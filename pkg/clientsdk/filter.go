package clientsdk

import (
	"strconv"
	"strings"
)

// Filter returns the clients whose name, email, phone, or decimal id contains
// the query, case-insensitively. An empty query returns the full slice. The
// match runs over an already-fetched list; nothing is sent to the server.
func Filter(clients []Client, query string) []Client {
	if query == "" {
		return clients
	}

	q := strings.ToLower(query)
	matched := make([]Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) ||
			strings.Contains(strconv.FormatInt(c.ID, 10), q) {
			matched = append(matched, c)
		}
	}
	return matched
}
