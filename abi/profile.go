package abi

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultProfileName is the conventional profile filename in a Rush project
// directory.
const DefaultProfileName = "rushrt.toml"

// Profile selects what the toolchain links and for which target.
type Profile struct {
	// Target is the os/arch pair the compiled output runs on. Only 64-bit
	// targets are supported; the payload word is 8 bytes.
	Target string `toml:"target"`

	// MinimalRuntime drops the printer symbols from the link set, for
	// programs compiled without print support.
	MinimalRuntime bool `toml:"minimal-runtime"`
}

// supportedTargets are the pairs whose C ABI matches the record layout.
var supportedTargets = map[string]bool{
	"linux/amd64":  true,
	"linux/arm64":  true,
	"darwin/amd64": true,
	"darwin/arm64": true,
}

// DefaultProfile returns the profile used when none is configured.
func DefaultProfile() Profile {
	return Profile{Target: "linux/amd64"}
}

// LoadProfile reads a TOML profile from path. Fields absent from the file
// keep their defaults.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("abi: read profile: %w", err)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("abi: parse profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks the profile against the targets the record layout holds
// for.
func (p Profile) Validate() error {
	if !supportedTargets[p.Target] {
		return fmt.Errorf("abi: unsupported target %q", p.Target)
	}
	return nil
}
