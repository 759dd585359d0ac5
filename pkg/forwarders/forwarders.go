package forwarders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	// Supported forwarder types.
	TypeSQS       = "sqs"
	TypeSNS       = "sns"
	TypeHTTP      = "http"
	TypeGCPPubSub = "gcppubsub"

	httpDefaultMethod         = "POST"
	httpDefaultTimeoutSeconds = 5
)

// configFile represents the structure of the forwarders configuration file.
type configFile struct {
	Forwarders []ForwarderConfig `json:"forwarders" yaml:"forwarders"`
}

// ForwarderConfig represents a single forwarder entry declared in config files.
type ForwarderConfig struct {
	ID      string               `json:"id" yaml:"id"`
	Type    string               `json:"type" yaml:"type"`
	Enabled *bool                `json:"enabled" yaml:"enabled"`
	SQS     *SQSForwarderConfig  `json:"sqs" yaml:"sqs"`
	SNS     *SNSForwarderConfig  `json:"sns" yaml:"sns"`
	HTTP    *HTTPForwarderConfig `json:"http" yaml:"http"`
	GCP     *GCPQueueConfig      `json:"gcppubsub" yaml:"gcppubsub"`
}

// SQSForwarderConfig holds AWS SQS specific settings.
type SQSForwarderConfig struct {
	QueueURL string `json:"uri" yaml:"uri"`
	Region   string `json:"region" yaml:"region"`
}

// SNSForwarderConfig holds AWS SNS specific settings.
type SNSForwarderConfig struct {
	TopicARN string `json:"topic_arn" yaml:"topic_arn"`
	Region   string `json:"region" yaml:"region"`
}

// HTTPForwarderConfig holds generic HTTP sink settings.
type HTTPForwarderConfig struct {
	URL            string            `json:"url" yaml:"url"`
	Method         string            `json:"method" yaml:"method"`
	Headers        map[string]string `json:"headers" yaml:"headers"`
	TimeoutSeconds int               `json:"timeout_seconds" yaml:"timeout_seconds"`
}

// GCPQueueConfig holds Google Cloud Pub/Sub settings.
type GCPQueueConfig struct {
	ProjectID       string `json:"project_id" yaml:"project_id"`
	Topic           string `json:"topic" yaml:"topic"`
	CredentialsFile string `json:"credentials_file" yaml:"credentials_file"`
}

// ConfigRegistry materializes forwarder definitions loaded from config files.
type ConfigRegistry struct {
	mu         sync.RWMutex
	forwarders []ForwarderConfig
	idx        map[string]ForwarderConfig
}

// LoadRegistry loads the forwarder registry from a YAML/JSON file.
func LoadRegistry(path string) (*ConfigRegistry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("forwarders file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open forwarders file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read forwarders file: %w", err)
	}

	fileReg, err := parseForwarderRegistry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(fileReg.Forwarders) == 0 {
		return nil, errors.New("forwarders file contains no forwarders entries")
	}

	reg := &ConfigRegistry{
		forwarders: make([]ForwarderConfig, len(fileReg.Forwarders)),
		idx:        make(map[string]ForwarderConfig, len(fileReg.Forwarders)),
	}

	for i := range fileReg.Forwarders {
		cfg := sanitizeForwarderConfig(fileReg.Forwarders[i])
		if err := validateForwarderConfig(cfg); err != nil {
			return nil, fmt.Errorf("forwarders[%d]: %w", i, err)
		}
		if _, exists := reg.idx[cfg.ID]; exists {
			return nil, fmt.Errorf("duplicate forwarder id %q", cfg.ID)
		}
		reg.forwarders[i] = cfg
		reg.idx[cfg.ID] = cfg
	}

	return reg, nil
}

// parseForwarderRegistry attempts to decode the forwarders file content.
func parseForwarderRegistry(data []byte, ext string) (configFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		if reg, err := unmarshalForwarderRegistry(d.name, data, d.fn); err == nil {
			return reg, nil
		}
	}

	return configFile{}, errors.New("forwarders file format not recognized (expected YAML or JSON)")
}

// unmarshalForwarderRegistry decodes the forwarders file using the provided function.
func unmarshalForwarderRegistry(name string, data []byte, fn func([]byte, any) error) (configFile, error) {
	var reg configFile
	if err := fn(data, &reg); err != nil {
		return configFile{}, fmt.Errorf("decode %s forwarders: %w", name, err)
	}
	return reg, nil
}

// sanitizeForwarderConfig trims and normalizes the forwarder config fields.
func sanitizeForwarderConfig(cfg ForwarderConfig) ForwarderConfig {
	cfg.ID = strings.TrimSpace(cfg.ID)
	cfg.Type = strings.ToLower(strings.TrimSpace(cfg.Type))

	if cfg.Enabled == nil {
		def := true
		cfg.Enabled = &def
	}
	if cfg.SQS != nil {
		c := *cfg.SQS
		c.QueueURL = strings.TrimSpace(c.QueueURL)
		c.Region = strings.TrimSpace(c.Region)
		cfg.SQS = &c
	}
	if cfg.SNS != nil {
		c := *cfg.SNS
		c.TopicARN = strings.TrimSpace(c.TopicARN)
		c.Region = strings.TrimSpace(c.Region)
		cfg.SNS = &c
	}
	if cfg.HTTP != nil {
		c := *cfg.HTTP
		c.URL = strings.TrimSpace(c.URL)
		c.Method = strings.ToUpper(strings.TrimSpace(c.Method))
		if c.Method == "" {
			c.Method = httpDefaultMethod
		}
		c.Headers = sanitizeHeaders(c.Headers)
		if c.TimeoutSeconds <= 0 {
			c.TimeoutSeconds = httpDefaultTimeoutSeconds
		}
		cfg.HTTP = &c
	}
	if cfg.GCP != nil {
		c := *cfg.GCP
		c.ProjectID = strings.TrimSpace(c.ProjectID)
		c.Topic = strings.TrimSpace(c.Topic)
		c.CredentialsFile = strings.TrimSpace(c.CredentialsFile)
		cfg.GCP = &c
	}

	return cfg
}

// sanitizeHeaders trims and removes empty headers.
func sanitizeHeaders(headers map[string]string) map[string]string {
	if len(headers) == 0 {
		return nil
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		key := strings.TrimSpace(k)
		val := strings.TrimSpace(v)
		if key == "" || val == "" {
			continue
		}
		out[key] = val
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// validateForwarderConfig checks that required fields are present.
func validateForwarderConfig(cfg ForwarderConfig) error {
	if cfg.ID == "" {
		return errors.New("id is required")
	}
	if cfg.Type == "" {
		return fmt.Errorf("type is required for forwarder %q", cfg.ID)
	}
	switch cfg.Type {
	case TypeSQS:
		if cfg.SQS == nil {
			return fmt.Errorf("sqs config required for forwarder %q", cfg.ID)
		}
		if cfg.SQS.QueueURL == "" {
			return fmt.Errorf("sqs.uri is required for forwarder %q", cfg.ID)
		}
		if cfg.SQS.Region == "" {
			return fmt.Errorf("sqs.region is required for forwarder %q", cfg.ID)
		}
	case TypeSNS:
		if cfg.SNS == nil {
			return fmt.Errorf("sns config required for forwarder %q", cfg.ID)
		}
		if cfg.SNS.TopicARN == "" {
			return fmt.Errorf("sns.topic_arn is required for forwarder %q", cfg.ID)
		}
		if cfg.SNS.Region == "" {
			return fmt.Errorf("sns.region is required for forwarder %q", cfg.ID)
		}
	case TypeHTTP:
		if cfg.HTTP == nil {
			return fmt.Errorf("http config required for forwarder %q", cfg.ID)
		}
		if cfg.HTTP.URL == "" {
			return fmt.Errorf("http.url is required for forwarder %q", cfg.ID)
		}
	case TypeGCPPubSub:
		if cfg.GCP == nil {
			return fmt.Errorf("gcppubsub config required for forwarder %q", cfg.ID)
		}
		if cfg.GCP.ProjectID == "" {
			return fmt.Errorf("gcppubsub.project_id is required for forwarder %q", cfg.ID)
		}
		if cfg.GCP.Topic == "" {
			return fmt.Errorf("gcppubsub.topic is required for forwarder %q", cfg.ID)
		}
	}
	return nil
}

// ByID returns the forwarder config by id.
func (r *ConfigRegistry) ByID(id string) (ForwarderConfig, bool) {
	if r == nil {
		return ForwarderConfig{}, false
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return ForwarderConfig{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.idx[id]
	return cfg, ok
}

// All returns all configured forwarders.
func (r *ConfigRegistry) All() []ForwarderConfig {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ForwarderConfig, len(r.forwarders))
	copy(out, r.forwarders)
	return out
}

// Enabled returns forwarders that are enabled.
func (r *ConfigRegistry) Enabled() []ForwarderConfig {
	if r == nil {
		return nil
	}

	all := r.All()
	if len(all) == 0 {
		return nil
	}

	out := make([]ForwarderConfig, 0, len(all))
	for _, cfg := range all {
		if cfg.EnabledValue() {
			out = append(out, cfg)
		}
	}
	return out
}

// EnabledValue returns enabled flag defaulting to true.
func (cfg ForwarderConfig) EnabledValue() bool {
	if cfg.Enabled == nil {
		return true
	}
	return *cfg.Enabled
}
