package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigEnv points at an explicit configuration file; otherwise
// addrcheck.yaml is looked up in the current directory.
const ConfigEnv = "ADDRCHECK_CONFIG"

func getViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("addrcheck")
	v.SetConfigType("yaml")
	if path := os.Getenv(ConfigEnv); path != "" {
		v.SetConfigFile(path)
	}
	v.AddConfigPath(".")
	return v
}

// Load reads the optional configuration file into dst. If a section is
// given, only that subtree is deserialized. A missing file is not an
// error when defaults are provided: the defaults are used instead.
func Load(section string, dst interface{}, defaults interface{}) error {
	v := getViper()
	if err := v.ReadInConfig(); err != nil {
		msg := strings.ToLower(err.Error())
		missing := strings.Contains(msg, "no such file") || strings.Contains(msg, "not found in")
		if defaults != nil && missing {
			bz, err := yaml.Marshal(defaults)
			if err != nil {
				return err
			}
			return yaml.Unmarshal(bz, dst)
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}
	if section != "" {
		// viper does not support partial deserialization, so the
		// subtree is re-serialized and parsed again.
		bz, err := yaml.Marshal(v.GetStringMap(section))
		if err != nil {
			return err
		}
		return yaml.Unmarshal(bz, dst)
	}
	return v.Unmarshal(dst)
}
