package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadScaled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wall.png")
	writePNG(t, path, 16, 8, color.RGBA{200, 10, 10, 255})

	img, err := loadScaled(path, 72)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 72 || b.Dy() != 72 {
		t.Fatalf("bounds = %v", b)
	}
	r, _, _, a := img.At(36, 36).RGBA()
	if a == 0 || r>>8 < 150 {
		t.Fatalf("scaled pixel lost its color: r=%d a=%d", r>>8, a>>8)
	}
}

func TestLoadScaled_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadScaled(filepath.Join(dir, "missing.png"), 10); !os.IsNotExist(err) {
		t.Fatalf("err = %v, want not-exist", err)
	}
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadScaled(bad, 10); err == nil {
		t.Fatal("expected decode error")
	}
}
