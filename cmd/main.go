package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	appconfig "github.com/mhdservices/qrstudio/internal/adapters/config"
	"github.com/mhdservices/qrstudio/internal/adapters/gui"
	"github.com/mhdservices/qrstudio/internal/domain/entity"
	"github.com/mhdservices/qrstudio/internal/domain/service"
	"github.com/mhdservices/qrstudio/pkg/logger"
	"github.com/mhdservices/qrstudio/pkg/qrcode"
)

var version = "v1.0.0"

type generateOptions struct {
	text       string
	level      string
	fill       string
	background string
	moduleSize int
	quietZone  int
	logoPath   string
	logoScale  int
	out        string
	verify     bool
}

func main() {
	root := &cobra.Command{
		Use:   "qrstudio",
		Short: "Generate QR codes with custom colors and an embedded logo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
	})

	var opts generateOptions
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a QR code straight to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	}
	generateCmd.Flags().StringVarP(&opts.text, "text", "t", "", "Text or URL to encode")
	generateCmd.Flags().StringVar(&opts.level, "level", "H", "Error-correction level (L, M, Q, H)")
	generateCmd.Flags().StringVar(&opts.fill, "fill", "", "Module color as #rrggbb (default from config)")
	generateCmd.Flags().StringVar(&opts.background, "background", "", "Background color as #rrggbb (default from config)")
	generateCmd.Flags().IntVar(&opts.moduleSize, "module-size", 0, "Pixels per module (default from config)")
	generateCmd.Flags().IntVar(&opts.quietZone, "border", -1, "Quiet-zone width in modules (default from config)")
	generateCmd.Flags().StringVar(&opts.logoPath, "logo", "", "Path to a PNG or JPEG logo to embed")
	generateCmd.Flags().IntVar(&opts.logoScale, "logo-scale", 0, "Logo size as % of the image side (default from config)")
	generateCmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (default: generated name in the output directory)")
	generateCmd.Flags().BoolVar(&opts.verify, "verify", false, "Scan the result and check it decodes back to the text")
	_ = generateCmd.MarkFlagRequired("text")
	root.AddCommand(generateCmd)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("qrstudio %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap() (*appconfig.Config, *logger.Logger, *service.Generator, error) {
	cfg, err := appconfig.Get()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(logger.Config{
		Debug:     cfg.Debug,
		LogToFile: cfg.LogToFile,
		LogsDir:   cfg.LogsDir,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, service.NewGenerator(log), nil
}

func runGUI() error {
	cfg, log, generator, err := bootstrap()
	if err != nil {
		return err
	}
	gui.New(cfg, generator, log).Run()
	return nil
}

func runGenerate(opts generateOptions) error {
	cfg, _, generator, err := bootstrap()
	if err != nil {
		return err
	}

	level, err := entity.ParseLevel(opts.level)
	if err != nil {
		return err
	}

	req := entity.GenerationRequest{
		Content: opts.text,
		Level:   level,
		Render: entity.RenderOptions{
			Foreground: cfg.Foreground,
			Background: cfg.Background,
			ModuleSize: cfg.ModuleSize,
			QuietZone:  cfg.QuietZone,
		},
	}
	if opts.fill != "" {
		if req.Render.Foreground, err = entity.ParseHexColor(opts.fill); err != nil {
			return err
		}
	}
	if opts.background != "" {
		if req.Render.Background, err = entity.ParseHexColor(opts.background); err != nil {
			return err
		}
	}
	if opts.moduleSize > 0 {
		req.Render.ModuleSize = opts.moduleSize
	}
	if opts.quietZone >= 0 {
		req.Render.QuietZone = opts.quietZone
	}
	if opts.logoPath != "" {
		img, err := qrcode.LoadLogo(opts.logoPath)
		if err != nil {
			return err
		}
		scale := cfg.LogoScale
		if opts.logoScale > 0 {
			scale = opts.logoScale
		}
		req.Logo = &entity.LogoOptions{
			Image:        img,
			ScalePercent: scale,
			PaddingPx:    cfg.LogoPadding,
		}
	}

	img, err := generator.Generate(req)
	if err != nil {
		return err
	}

	if opts.verify {
		if err := generator.Verify(img, strings.TrimSpace(opts.text)); err != nil {
			return err
		}
		fmt.Println("verified: image decodes back to the input text")
	}

	path := opts.out
	if path == "" {
		if path, err = generator.SaveImageToDir(img, cfg.OutputDir); err != nil {
			return err
		}
	} else if err = generator.SaveImage(img, path); err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}
