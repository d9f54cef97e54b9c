package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// QueryInt reads key from q. A missing key gives def; a value that is not
// an integer is an error so the caller can reject the request.
func QueryInt(q url.Values, key string, def int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", key, err)
	}
	return n, nil
}
