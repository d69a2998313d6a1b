package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts
func (e *EbitenRenderer) loadFonts() error {
	var err error
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return err
	}
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return err
	}
	if e.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return err
	}
	return nil
}

// getFontFace returns a cached face for a font family and size.
// Families are "mono", "sans" and "sans-bold"; anything else uses sans.
func (e *EbitenRenderer) getFontFace(family string, size float64) *text.GoTextFace {
	if size <= 0 {
		size = baseFontSize
	}
	key := faceKey{family: family, size: size}
	if face, ok := e.faces[key]; ok {
		return face
	}

	source := e.sansFontSource
	switch family {
	case "mono":
		source = e.monoFontSource
	case "sans-bold":
		source = e.sansBoldFontSource
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	e.faces[key] = face
	return face
}

