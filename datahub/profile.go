package datahub

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/stcorp/muninn-sentinel5p/s5p"
)

const defaultSFTPPort = 22

// PullProfile describes an upstream data hub and the local inbox that
// pulled products land in. ProductTypes, when given, restricts the pull
// to the listed registry identifiers.
type PullProfile struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	User           string   `yaml:"user"`
	PrivateKeyFile string   `yaml:"private_key_file"`
	RemoteDir      string   `yaml:"remote_dir"`
	Inbox          string   `yaml:"inbox"`
	ProductTypes   []string `yaml:"product_types"`
}

// LoadPullProfile reads and validates a YAML pull profile.
func LoadPullProfile(path string) (*PullProfile, error) {
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read the pull profile %v", path)
	}

	profile := &PullProfile{Port: defaultSFTPPort}
	if err := yaml.Unmarshal(rawBytes, profile); err != nil {
		return nil, errors.Wrapf(err, "Could not parse the pull profile %v", path)
	}

	if err := profile.validate(); err != nil {
		return nil, errors.Wrapf(err, "Invalid pull profile %v", path)
	}
	return profile, nil
}

func (p *PullProfile) validate() error {
	switch {
	case p.Host == "":
		return errors.New("no host given")
	case p.User == "":
		return errors.New("no user given")
	case p.PrivateKeyFile == "":
		return errors.New("no private key file given")
	case p.RemoteDir == "":
		return errors.New("no remote directory given")
	case p.Inbox == "":
		return errors.New("no inbox directory given")
	}
	for _, productType := range p.ProductTypes {
		if _, ok := s5p.Resolve(productType); !ok {
			return errors.Errorf("%v is not a registered product type", productType)
		}
	}
	return nil
}

// allows reports whether a product type passes the profile's allowlist.
// An empty allowlist passes everything.
func (p *PullProfile) allows(productType string) bool {
	if len(p.ProductTypes) == 0 {
		return true
	}
	for _, allowed := range p.ProductTypes {
		if allowed == productType {
			return true
		}
	}
	return false
}
