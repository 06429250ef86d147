package config

const (
	defaultServiceName   = "daily-limits"
	defaultAgentHostPort = "127.0.0.1:6831"
)

type TracingConfig struct {
	On       bool   `yaml:"enabled"`
	Name     string `yaml:"service-name"`
	HostPort string `yaml:"agent-host-port"`
}

func (t *TracingConfig) setDefaults() {
	if t.Name == "" {
		t.Name = defaultServiceName
	}
	if t.HostPort == "" {
		t.HostPort = defaultAgentHostPort
	}
}

func (t *TracingConfig) Enabled() bool {
	return t.On
}

func (t *TracingConfig) ServiceName() string {
	return t.Name
}

func (t *TracingConfig) AgentHostPort() string {
	return t.HostPort
}
