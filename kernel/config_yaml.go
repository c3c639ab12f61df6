package kernel

import (
	"io"

	"gopkg.in/yaml.v2"
)

// LoadConfig decodes a kernel.yaml-shaped document from r and verifies it.
// A host binary ships this alongside the executable the way tinygo ships
// its own YAML-described settings; unlike tinygo's target files this is
// consumed directly as YAML rather than JSON.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, err
	}
	if err := c.Verify(); err != nil {
		return Config{}, err
	}
	return c, nil
}
