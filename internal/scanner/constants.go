package scanner

import "time"

const (
	DefaultMaxTries    = 3                // maximum attempts per URL
	DefaultConcurrency = 20               // number of workers
	DefaultTimeout     = 10 * time.Second // per-attempt network timeout
)

// defaultHeaders are sent with every request. Host and Referer are set per URL.
var defaultHeaders = map[string]string{
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.8",
	"Cookie":          "_gauges_unique_hour=1; _gauges_unique_day=1; _gauges_unique_month=1; _gauges_unique_year=1; _gauges_unique=1",
	"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36",
}
