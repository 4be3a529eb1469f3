package blacklist

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/blcheck/internal/errors"
)

// SeedFile is the YAML layout accepted by LoadSeedFile.
//
//	servers: 10000
//	hosts:
//	  - ip: 200.24.34.55
//	    servers: [0, 1, 2]
type SeedFile struct {
	Servers int        `yaml:"servers"`
	Hosts   []SeedHost `yaml:"hosts"`
}

// SeedHost lists one host.
type SeedHost struct {
	IP      string `yaml:"ip"`
	Servers []int  `yaml:"servers"`
}

// ParseSeeds decodes a seed document. A missing servers field defaults to
// DefaultServerCount.
func ParseSeeds(r io.Reader) (SeedFile, error) {
	var sf SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && err != io.EOF {
		return SeedFile{}, fmt.Errorf("decoding seed file: %w", err)
	}
	if sf.Servers == 0 {
		sf.Servers = DefaultServerCount
	}
	return sf, nil
}

// Build creates a registry from the seed document.
func (sf SeedFile) Build(opts ...Option) (*Registry, error) {
	reg, err := NewRegistry(sf.Servers, opts...)
	if err != nil {
		return nil, err
	}
	for n, h := range sf.Hosts {
		if err := reg.Seed(h.IP, h.Servers...); err != nil {
			return nil, apperrors.WrapError(err, "seed entry %d", n)
		}
	}
	return reg, nil
}

// LoadSeedFile reads a YAML seed file and builds the registry it describes.
func LoadSeedFile(path string, opts ...Option) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	sf, err := ParseSeeds(f)
	if err != nil {
		return nil, err
	}
	return sf.Build(opts...)
}
