package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings is the run configuration. Gameplay tunables live in the prefabs instead.
type Settings struct {
	Window    WindowSettings    `mapstructure:"window"`
	Log       LogSettings       `mapstructure:"log"`
	Scene     SceneSettings     `mapstructure:"scene"`
	Autopilot AutopilotSettings `mapstructure:"autopilot"`
	Prefabs   PrefabSettings    `mapstructure:"prefabs"`
	Debug     bool              `mapstructure:"debug"`
}

type WindowSettings struct {
	Title       string `mapstructure:"title"`
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	Fullscreen  bool   `mapstructure:"fullscreen"`
	BaseMonitor bool   `mapstructure:"baseMonitor"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type SceneSettings struct {
	Seed uint64 `mapstructure:"seed"`
}

type AutopilotSettings struct {
	Script string `mapstructure:"script"`
}

type PrefabSettings struct {
	Watch bool `mapstructure:"watch"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "stardrive")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.baseMonitor", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	v.SetDefault("scene.seed", 1)

	v.SetDefault("autopilot.script", "")

	v.SetDefault("prefabs.watch", true)

	v.SetDefault("debug", false)
}

// Load reads settings from path, or from stardrive.yaml in the working directory when
// path is empty. A missing default file is not an error; a missing explicit one is.
func Load(path string) (*viper.Viper, Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("stardrive")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, Settings{}, fmt.Errorf("config: read: %w", err)
		}
	}

	settings, err := decode(v)
	if err != nil {
		return nil, Settings{}, err
	}
	return v, settings, nil
}

// Override applies explicitly set values (typically command line flags) and re-decodes.
func Override(v *viper.Viper, values map[string]any) (Settings, error) {
	for k, val := range values {
		v.Set(k, val)
	}
	return decode(v)
}

func decode(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decode: %w", err)
	}
	return s, nil
}
