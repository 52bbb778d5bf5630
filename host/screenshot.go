package host

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// screenshotter captures the frame at the end of Draw when requested. F12
// requests one; files land in dir as <timestamp>_tick<N>.png.
type screenshotter struct {
	dir     string
	pending bool
}

func (sc *screenshotter) request() {
	sc.pending = true
}

// flush writes the frame if a capture is pending and returns the path.
func (sc *screenshotter) flush(screen *ebiten.Image, tick uint64) (string, error) {
	if !sc.pending {
		return "", nil
	}
	sc.pending = false

	if err := os.MkdirAll(sc.dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)

	name := fmt.Sprintf("%s_tick%d.png", time.Now().Format("20060102_150405"), tick)
	path := filepath.Join(sc.dir, name)
	if err := writePNG(path, straightAlpha(pixels, b.Dx(), b.Dy())); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// straightAlpha converts premultiplied RGBA pixels to an NRGBA image.
func straightAlpha(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
