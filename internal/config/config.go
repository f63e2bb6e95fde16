package config

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var (
	cfg  *APIConfig
	once sync.Once
)

// APIConfig represents the root element of config.xml.
type APIConfig struct {
	XMLName     xml.Name        `xml:"API"`
	RequestDump bool            `xml:"REQUEST_DUMP,attr"`
	Context     ContextConfig   `xml:"CONTEXT"`
	Interview   InterviewConfig `xml:"INTERVIEW"`
	LLM         LLMConfig       `xml:"LLM"`
	RateLimit   RateLimitConfig `xml:"RATE_LIMIT"`
	DB          DBConfig        `xml:"DB"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port     int    `xml:"PORT"`
	Host     string `xml:"HOST"`
	Path     string `xml:"PATH"`
	TimeZone string `xml:"TIME_ZONE"`
	LogDir   string `xml:"LOG_DIR"`
}

// InterviewConfig holds interview protocol settings.
type InterviewConfig struct {
	// SessionMaxAgeMinutes controls the periodic stale-session sweep.
	// Zero disables the sweep.
	SessionMaxAgeMinutes int    `xml:"SESSION_MAX_AGE_MINUTES"`
	TranscriptDir        string `xml:"TRANSCRIPT_DIR"`
}

// LLMConfig holds settings for the Ollama completion capability. An empty
// URL means the capability is not configured, which is a valid state: the
// interview runs entirely on fallback templates.
type LLMConfig struct {
	URL            string `xml:"URL"`
	Model          string `xml:"MODEL"`
	TimeoutSeconds int    `xml:"TIMEOUT_SECONDS"`
}

// RateLimitConfig holds per-IP API rate limit settings.
type RateLimitConfig struct {
	Enabled           bool    `xml:"ENABLED,attr"`
	RequestsPerSecond float64 `xml:"REQUESTS_PER_SECOND"`
	Burst             int     `xml:"BURST"`
}

// DBConfig holds database connection settings. Initialize=false runs the
// service without persistence; transcripts are then PDF-only.
type DBConfig struct {
	Initialize bool       `xml:"INITIALIZE"`
	Host       string     `xml:"HOST"`
	Port       int        `xml:"PORT"`
	SSLMode    string     `xml:"SSL_MODE"`
	Name       string     `xml:"NAME"`
	Username   string     `xml:"USERNAME"`
	Password   DBPassword `xml:"PASSWORD"`
}

// DBPassword holds password details.
type DBPassword struct {
	Type  string `xml:"TYPE,attr"`
	Value string `xml:",chardata"`
}

// LoadConfig loads and parses the XML configuration from the given file,
// then overlays values from the environment (a .env file is honored when
// present). Environment variables win over XML so deployments can keep
// secrets out of the config file.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	once.Do(func() {
		f, err := os.Open(xmlPath)
		if err != nil {
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return
		}

		var newCfg APIConfig
		if err := xml.Unmarshal(data, &newCfg); err != nil {
			return
		}

		applyEnvOverrides(&newCfg)
		cfg = &newCfg
	})

	if cfg == nil {
		return nil, os.ErrInvalid
	}
	return cfg, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}

func applyEnvOverrides(c *APIConfig) {
	// Missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	if v := os.Getenv("OLLAMA_URL"); v != "" {
		c.LLM.URL = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.DB.Password.Value = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.DB.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Context.Port = port
		}
	}
}
