package render

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	xdraw "golang.org/x/image/draw"
)

// UnitFrames is the number of frames in the unit idle cycle
const UnitFrames = 5

// SpriteSet holds optional bitmap art. Nil images are drawn as shapes.
type SpriteSet struct {
	Unit [UnitFrames]*ebiten.Image
	Wall *ebiten.Image
	Sand *ebiten.Image
}

// LoadSprites loads unit-0.png .. unit-4.png, wall.png and sand.png from
// dir, scaled to size x size. Missing files are skipped.
func LoadSprites(dir string, size int, log logrus.FieldLogger) *SpriteSet {
	ss := &SpriteSet{}
	load := func(name string) *ebiten.Image {
		img, err := loadScaled(filepath.Join(dir, name), size)
		if err != nil {
			if !os.IsNotExist(err) {
				log.WithError(err).WithField("sprite", name).Warn("could not load sprite")
			}
			return nil
		}
		return ebiten.NewImageFromImage(img)
	}

	loaded := 0
	for i := range ss.Unit {
		if ss.Unit[i] = load(fmt.Sprintf("unit-%d.png", i)); ss.Unit[i] != nil {
			loaded++
		}
	}
	for _, s := range []struct {
		dst  **ebiten.Image
		name string
	}{{&ss.Wall, "wall.png"}, {&ss.Sand, "sand.png"}} {
		if *s.dst = load(s.name); *s.dst != nil {
			loaded++
		}
	}
	log.WithFields(logrus.Fields{"dir": dir, "loaded": loaded}).Debug("sprites loaded")
	return ss
}

// UnitFrame returns the image for an animation frame, or nil
func (ss *SpriteSet) UnitFrame(frame int) *ebiten.Image {
	if ss == nil || frame < 0 {
		return nil
	}
	return ss.Unit[frame%UnitFrames]
}

// loadScaled decodes an image file and scales it to a size x size square
func loadScaled(path string, size int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if src.Bounds().Dx() == size && src.Bounds().Dy() == size {
		return src, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst, nil
}
