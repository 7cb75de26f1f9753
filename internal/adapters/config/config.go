package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/spf13/viper"

	"github.com/mhdservices/qrstudio/internal/domain/entity"
)

// Config holds the tool's startup defaults. Generation inputs are still
// passed explicitly per request; these only seed the initial widget and
// flag values.
type Config struct {
	Foreground  color.RGBA
	Background  color.RGBA
	ModuleSize  int
	QuietZone   int
	LogoScale   int
	LogoPadding int
	OutputDir   string
	PreviewSide int
	Debug       bool
	LogToFile   bool
	LogsDir     string
}

func setDefaults() {
	viper.SetDefault("render.fill", "black")
	viper.SetDefault("render.background", "white")
	viper.SetDefault("render.module-size", 10)
	viper.SetDefault("render.quiet-zone", 4)
	viper.SetDefault("logo.scale", 25)
	viper.SetDefault("logo.padding", 10)
	viper.SetDefault("output.dir", "output")
	viper.SetDefault("preview.side", 260)
	viper.SetDefault("settings.debug", false)
	viper.SetDefault("settings.log-to-file", false)
	viper.SetDefault("settings.logs-dir", "logs")
}

// Get loads config.yaml from the working directory when present and falls
// back to built-in defaults otherwise. QRSTUDIO_* environment variables
// override both.
func Get() (*Config, error) {
	viper.Reset()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("qrstudio")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	fill, err := entity.ParseHexColor(viper.GetString("render.fill"))
	if err != nil {
		return nil, fmt.Errorf("render.fill: %w", err)
	}
	background, err := entity.ParseHexColor(viper.GetString("render.background"))
	if err != nil {
		return nil, fmt.Errorf("render.background: %w", err)
	}

	return &Config{
		Foreground:  fill,
		Background:  background,
		ModuleSize:  viper.GetInt("render.module-size"),
		QuietZone:   viper.GetInt("render.quiet-zone"),
		LogoScale:   viper.GetInt("logo.scale"),
		LogoPadding: viper.GetInt("logo.padding"),
		OutputDir:   viper.GetString("output.dir"),
		PreviewSide: viper.GetInt("preview.side"),
		Debug:       viper.GetBool("settings.debug"),
		LogToFile:   viper.GetBool("settings.log-to-file"),
		LogsDir:     viper.GetString("settings.logs-dir"),
	}, nil
}
