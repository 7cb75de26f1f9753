// Package gui is the desktop shell around the generation service: a single
// window with a text entry, color pickers, logo picker, scale slider and a
// live preview. Widget state lives here; every generation builds a fresh
// request from it.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	appconfig "github.com/mhdservices/qrstudio/internal/adapters/config"
	"github.com/mhdservices/qrstudio/internal/domain/common/errorz"
	"github.com/mhdservices/qrstudio/internal/domain/entity"
	"github.com/mhdservices/qrstudio/internal/domain/service"
	"github.com/mhdservices/qrstudio/pkg/logger"
	"github.com/mhdservices/qrstudio/pkg/qrcode"
)

// Studio is the main window. Current selections (colors, logo path, scale)
// are plain fields; a request value is rebuilt from them per generation.
type Studio struct {
	app    fyne.App
	window fyne.Window

	cfg       *appconfig.Config
	generator *service.Generator
	log       *logger.Logger

	contentEntry *widget.Entry
	logoLabel    *widget.Label
	scaleLabel   *widget.Label
	scaleSlider  *widget.Slider
	previewImage *canvas.Image
	statusLabel  *widget.Label

	fill     color.RGBA
	back     color.RGBA
	logoPath string

	// latest-request-wins: stale preview results are dropped
	requestID atomic.Int64
}

func New(cfg *appconfig.Config, generator *service.Generator, log *logger.Logger) *Studio {
	a := app.NewWithID("com.mhdservices.qrstudio")
	w := a.NewWindow("QR Studio")
	w.Resize(fyne.NewSize(420, 680))
	w.CenterOnScreen()

	s := &Studio{
		app:       a,
		window:    w,
		cfg:       cfg,
		generator: generator,
		log:       log.Named("gui"),
		fill:      cfg.Foreground,
		back:      cfg.Background,
	}
	s.buildUI()

	log.OnEntry(func(e logger.Entry) {
		fyne.Do(func() {
			s.statusLabel.SetText(e.Message)
		})
	})

	return s
}

func (s *Studio) buildUI() {
	s.contentEntry = widget.NewEntry()
	s.contentEntry.SetPlaceHolder("Text or URL")

	fillButton := widget.NewButton("Pick Fill Color", func() {
		s.pickColor("Fill color", &s.fill)
	})
	backButton := widget.NewButton("Pick Background Color", func() {
		s.pickColor("Background color", &s.back)
	})
	logoButton := widget.NewButton("Choose Logo (optional)", s.chooseLogo)
	s.logoLabel = widget.NewLabel("No logo selected")

	s.scaleLabel = widget.NewLabel(fmt.Sprintf("Logo size: %d%% of QR", s.cfg.LogoScale))
	s.scaleSlider = widget.NewSlider(float64(qrcode.MinLogoScalePercent), float64(qrcode.MaxLogoScalePercent))
	s.scaleSlider.Step = 1
	s.scaleSlider.Value = float64(qrcode.ClampLogoScale(s.cfg.LogoScale))
	s.scaleSlider.OnChanged = func(v float64) {
		s.scaleLabel.SetText(fmt.Sprintf("Logo size: %d%% of QR", int(v)))
	}
	s.scaleSlider.OnChangeEnded = func(float64) {
		if s.logoPath != "" {
			s.refreshPreview()
		}
	}

	s.previewImage = canvas.NewImageFromImage(nil)
	s.previewImage.FillMode = canvas.ImageFillContain
	s.previewImage.SetMinSize(fyne.NewSize(float32(s.cfg.PreviewSide), float32(s.cfg.PreviewSide)))

	previewButton := widget.NewButton("Preview QR Code", s.refreshPreview)
	saveButton := widget.NewButton("Save QR Code", s.saveCurrent)
	saveButton.Importance = widget.HighImportance

	s.statusLabel = widget.NewLabel("")

	form := container.NewVBox(
		widget.NewLabel("Enter text or URL:"),
		s.contentEntry,
		fillButton,
		backButton,
		logoButton,
		s.logoLabel,
		widget.NewSeparator(),
		s.scaleLabel,
		s.scaleSlider,
		previewButton,
		saveButton,
	)

	s.window.SetContent(container.NewBorder(
		form, s.statusLabel, nil, nil,
		container.NewPadded(s.previewImage),
	))
}

// Run shows the window and blocks until it is closed.
func (s *Studio) Run() {
	s.window.ShowAndRun()
}

func (s *Studio) pickColor(title string, dst *color.RGBA) {
	dialog.ShowColorPicker(title, "Choose color", func(c color.Color) {
		if c == nil {
			return
		}
		r, g, b, a := c.RGBA()
		*dst = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
		s.refreshPreview()
	}, s.window)
}

func (s *Studio) chooseLogo() {
	picker := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, s.window)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()
		s.logoPath = rc.URI().Path()
		s.logoLabel.SetText(filepath.Base(s.logoPath))
		s.refreshPreview()
	}, s.window)
	picker.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg"}))
	picker.Show()
}

// buildRequest snapshots the widget state into an immutable request value.
func (s *Studio) buildRequest() (entity.GenerationRequest, error) {
	req := entity.GenerationRequest{
		Content: s.contentEntry.Text,
		Level:   entity.LevelHigh,
		Render: entity.RenderOptions{
			Foreground: s.fill,
			Background: s.back,
			ModuleSize: s.cfg.ModuleSize,
			QuietZone:  s.cfg.QuietZone,
		},
	}
	if s.logoPath != "" {
		img, err := qrcode.LoadLogo(s.logoPath)
		if err != nil {
			return req, err
		}
		req.Logo = &entity.LogoOptions{
			Image:        img,
			ScalePercent: int(s.scaleSlider.Value),
			PaddingPx:    s.cfg.LogoPadding,
		}
	}
	return req, nil
}

func (s *Studio) refreshPreview() {
	req, err := s.buildRequest()
	if err != nil {
		s.showGenerationError(err)
		return
	}

	id := s.requestID.Add(1)
	go func() {
		img, err := s.generator.Generate(req)
		if s.requestID.Load() != id {
			return // superseded by a newer request
		}
		fyne.Do(func() {
			if err != nil {
				s.showGenerationError(err)
				return
			}
			s.previewImage.Image = s.generator.Preview(img, s.cfg.PreviewSide)
			s.previewImage.Refresh()
			s.statusLabel.SetText(fmt.Sprintf("%dx%d px", img.Bounds().Dx(), img.Bounds().Dy()))
		})
	}()
}

func (s *Studio) saveCurrent() {
	req, err := s.buildRequest()
	if err != nil {
		s.showGenerationError(err)
		return
	}

	saver := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, s.window)
			return
		}
		if wc == nil {
			return
		}
		go func() {
			defer wc.Close()
			data, err := s.generator.GeneratePNG(req)
			if err != nil {
				fyne.Do(func() { s.showGenerationError(err) })
				return
			}
			if _, err := wc.Write(data); err != nil {
				fyne.Do(func() { dialog.ShowError(err, s.window) })
				return
			}
			name := wc.URI().Name()
			s.log.Infof("qr code saved as %s", name)
			fyne.Do(func() {
				dialog.ShowInformation("Success", "QR code saved as "+name, s.window)
			})
		}()
	}, s.window)
	saver.SetFileName("qr_code.png")
	saver.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	saver.Show()
}

func (s *Studio) showGenerationError(err error) {
	switch {
	case errors.Is(err, errorz.EmptyContent):
		dialog.ShowInformation("Input required", "Please enter text or URL!", s.window)
	case errors.Is(err, errorz.ContentTooLong):
		dialog.ShowError(errors.New("the text is too long for a single QR code"), s.window)
	case errors.Is(err, errorz.UnsupportedLogo):
		dialog.ShowError(fmt.Errorf("failed to load logo: %v", err), s.window)
	default:
		dialog.ShowError(err, s.window)
	}
}
