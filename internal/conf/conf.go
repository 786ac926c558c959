package conf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap is the root of the service configuration.
type Bootstrap struct {
	Server     *Server     `json:"server"`
	Data       *Data       `json:"data"`
	Enrichment *Enrichment `json:"enrichment"`
	Stats      *Stats      `json:"stats"`
}

// Server configures the transports.
type Server struct {
	Http *Server_HTTP `json:"http"`
}

// Server_HTTP configures the HTTP transport.
type Server_HTTP struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

// Data configures the stores.
type Data struct {
	Database *Data_Database `json:"database"`
	Redis    *Data_Redis    `json:"redis"`
}

// Data_Database selects the SQL driver and DSN. Driver is "postgres" or "sqlite3".
type Data_Database struct {
	Driver string `json:"driver"`
	Source string `json:"source"`
}

// Data_Redis configures the link cache. An empty Addr disables caching.
type Data_Redis struct {
	Addr         string    `json:"addr"`
	ReadTimeout  *Duration `json:"read_timeout"`
	WriteTimeout *Duration `json:"write_timeout"`
}

// Enrichment configures the enrichment oracle client.
type Enrichment struct {
	Endpoint string    `json:"endpoint"`
	Timeout  *Duration `json:"timeout"`
}

// Stats configures the aggregation engine.
type Stats struct {
	// ExportLimit caps the raw click listing.
	ExportLimit int `json:"export_limit"`
	// LocationCacheSize is the number of parsed timezones kept in memory.
	LocationCacheSize int `json:"location_cache_size"`
}

// Duration is a time.Duration read from strings such as "2s" or from
// integer nanoseconds.
type Duration struct {
	time.Duration
}

// NewDuration wraps d.
func NewDuration(d time.Duration) *Duration {
	return &Duration{Duration: d}
}

// AsDuration returns the wrapped value; a nil Duration is zero.
func (d *Duration) AsDuration() time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
