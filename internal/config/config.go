package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configFile = "data/config.yaml"

type config struct {
	App     AppConfig     `yaml:"app"`
	Tracing TracingConfig `yaml:"tracing"`
}

type Service struct {
	config config
}

func New() (*Service, error) {
	return NewFromFile(configFile)
}

func NewFromFile(path string) (*Service, error) {
	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	s.config.App.setDefaults()
	s.config.Tracing.setDefaults()
	return s, nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
