package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/tutils/tperm/entropy"
	"github.com/tutils/tperm/perm"
)

// settings are the parameters that pin down one generator.
type settings struct {
	max    uint64
	seed   uint64
	source string
}

// parseUint parses s like strtoull with base 0: decimal, 0x hex or 0 octal.
func parseUint(name, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

// resolveSettings takes max and seed from the positional arguments when
// present, then from flags, config and environment. A missing seed falls
// back to now().
func resolveSettings(v *viper.Viper, args []string, now func() time.Time) (settings, error) {
	s := settings{max: ^uint64(0), source: v.GetString("source")}

	maxStr := v.GetString("max")
	if len(args) >= 1 {
		maxStr = args[0]
	}
	if maxStr != "" {
		var err error
		if s.max, err = parseUint("max", maxStr); err != nil {
			return settings{}, err
		}
	}

	seedStr := v.GetString("seed")
	if len(args) >= 2 {
		seedStr = args[1]
	}
	if seedStr != "" {
		var err error
		if s.seed, err = parseUint("seed", seedStr); err != nil {
			return settings{}, err
		}
	} else {
		s.seed = uint64(now().Unix())
	}
	return s, nil
}

func (s settings) generator(opts ...perm.Option) (*perm.Generator, error) {
	src, err := entropy.New(s.source, s.seed)
	if err != nil {
		return nil, err
	}
	return perm.New(s.max, append([]perm.Option{perm.WithSource(src)}, opts...)...), nil
}
