package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file name looked up in the config directory.
const ConfigurationName = "config.yaml"

// Configuration holds the shell's tunable settings.
type Configuration struct {
	// Prompt is printed before every line is read.
	Prompt string `json:"prompt" validate:"required"`

	// MaxArgs bounds the tokens taken from one line. Lines with more
	// tokens are truncated with a warning rather than rejected.
	MaxArgs int `json:"max_args" validate:"gte=1,lte=1024"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
