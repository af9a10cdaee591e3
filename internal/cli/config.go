package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig is the optional .treeview.toml. Every key mirrors a flag of
// the same meaning; flags given on the command line win.
type fileConfig struct {
	Dir         string `toml:"dir"`
	Prefix      string `toml:"prefix"`
	Format      string `toml:"format"`
	Layout      string `toml:"layout"`
	Unit        int    `toml:"unit"`
	Inline      bool   `toml:"inline"`
	Open        *bool  `toml:"open"`
	RedisAddr   string `toml:"redis_addr"`
	RedisPrefix string `toml:"redis_prefix"`
}

// loadConfig reads the config file at path. A missing file is only an
// error when the path was given explicitly.
func loadConfig(path string, explicit bool) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, extra[0].String())
	}
	return cfg, nil
}
