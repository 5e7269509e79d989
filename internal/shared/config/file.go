package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML overlay. Secrets are never read from it.
type fileConfig struct {
	Env    string `yaml:"env"`
	Server struct {
		Port             string   `yaml:"port"`
		BaseURL          string   `yaml:"base_url"`
		LoginURL         string   `yaml:"login_url"`
		CORSAllowOrigins []string `yaml:"cors_allow_origins"`
	} `yaml:"server"`
	Storage struct {
		Type      string `yaml:"type"`
		LocalDir  string `yaml:"local_dir"`
		AWSRegion string `yaml:"aws_region"`
		S3Bucket  string `yaml:"s3_bucket"`
		S3Prefix  string `yaml:"s3_prefix"`
	} `yaml:"storage"`
	LLM struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
	} `yaml:"llm"`
	Export struct {
		Renderer   string `yaml:"renderer"`
		ChromePath string `yaml:"chrome_path"`
	} `yaml:"export"`
	Mail struct {
		From string `yaml:"from"`
	} `yaml:"mail"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file: %w", err)
	}
	return fc, nil
}
