package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/picture"
	"github.com/gogpu/ggpaint/protocol"
	"github.com/gogpu/ggpaint/texture"
)

var (
	renderOutput  string
	renderScale   int
	renderStream  string
	renderName    string
	renderVersion int
	renderWidth   int
	renderHeight  int
	renderBgColor string

	renderCmd = &cobra.Command{
		Use:   "render [IMAGE]",
		Short: "Upload a picture through the texture cache and save the texture as PNG",
		Long: `Render loads a picture from an image file (PNG, BMP or WebP) or from a
stream of encoded canvas updates, pushes it through the texture cache with
an in-memory device and writes the resulting texture to PNG. The output
shows exactly what the GPU would receive, including the placeholder for
canvases whose picture is too small.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "canvas.png", "output PNG file, or directory with --stream")
	renderCmd.Flags().IntVarP(&renderScale, "scale", "s", 8, "integer upscale factor")
	renderCmd.Flags().StringVar(&renderStream, "stream", "", "read canvas updates from an encoded stream")
	renderCmd.Flags().StringVar(&renderName, "name", "canvas", "canvas name")
	renderCmd.Flags().IntVar(&renderVersion, "version", 1, "picture version")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "canvas width (default: image width)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "canvas height (default: image height)")
	renderCmd.Flags().StringVar(&renderBgColor, "background", "", "flatten onto this color, e.g. #F4E9D0 (default: keep alpha)")
}

// canvasSize is the declared size and version of a canvas.
type canvasSize struct {
	width, height, version int
}

type canvasSizes map[string]canvasSize

func runRender(cmd *cobra.Command, args []string) error {
	var bg *ggpaint.Color
	if renderBgColor != "" {
		c, err := ggpaint.ParseHex(renderBgColor)
		if err != nil {
			return err
		}
		bg = &c
	}

	store := picture.NewStore()
	sizes := canvasSizes{}

	switch {
	case renderStream != "":
		if err := loadStream(cmd.Context(), renderStream, store, sizes); err != nil {
			return err
		}
	case len(args) == 1:
		if err := loadImage(args[0], store, sizes); err != nil {
			return err
		}
	default:
		return errors.New("render: give an image or --stream")
	}

	creator := texture.NewSoftwareCreator()
	cache, err := texture.NewCache(store, texture.NewDevice(creator))
	if err != nil {
		return err
	}
	defer func() {
		if err := cache.Close(); err != nil {
			log.Warn("closing cache", "err", err)
		}
	}()

	for _, name := range store.Names() {
		size := sizes[name]
		entry, err := cache.GetOrCreate(name, size.version, size.width, size.height)
		if err != nil {
			return err
		}
		out := renderOutput
		if renderStream != "" {
			if err := os.MkdirAll(renderOutput, 0o755); err != nil {
				return err
			}
			out = filepath.Join(renderOutput, fileName(name)+".png")
		}
		if err := saveTexture(entry, out, bg); err != nil {
			return err
		}
		log.Info("rendered", "canvas", name, "state", entry.State(), "outcome", entry.LastOutcome(), "file", out)
	}

	st := store.Stats()
	log.Debug("picture store", "canvases", st.Len, "hits", st.Hits, "misses", st.Misses)
	return nil
}

func loadImage(path string, store *picture.Store, sizes canvasSizes) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	b := img.Bounds()
	w, h := renderWidth, renderHeight
	if w == 0 {
		w = b.Dx()
	}
	if h == 0 {
		h = b.Dy()
	}
	log.Debug("image loaded", "path", path, "format", format, "size", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()))

	store.Put(renderName, renderVersion, ggpaint.PicturePixels(img))
	sizes[picture.NormalizeName(renderName)] = canvasSize{width: w, height: h, version: renderVersion}
	return nil
}

func loadStream(ctx context.Context, path string, store *picture.Store, sizes canvasSizes) error {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer f.Close()

	codec, err := protocol.NewCodec()
	if err != nil {
		return err
	}
	defer codec.Close()

	d := protocol.NewDispatcher(codec, store, nil, nil)
	r := bufio.NewReader(f)
	n := 0
	for ctx.Err() == nil {
		m, err := codec.ReadFrame(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, protocol.ErrUnknownMessage) {
			log.Debug("skipping frame", "err", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if u, ok := m.(protocol.CanvasUpdate); ok {
			sizes[picture.NormalizeName(u.Name)] = canvasSize{width: u.Width, height: u.Height, version: u.Version}
		}
		if err := d.Handle(m); err != nil {
			return err
		}
		n++
	}
	log.Info("stream loaded", "messages", n, "canvases", store.Len())
	return ctx.Err()
}

func saveTexture(entry *texture.CachedTexture, path string, bg *ggpaint.Color) error {
	tex, ok := entry.Texture().(*texture.GPUTexture)
	if !ok {
		return fmt.Errorf("canvas %s: unexpected texture type %T", entry.Name(), entry.Texture())
	}
	sw, ok := tex.Native().(*texture.SoftwareTexture)
	if !ok {
		return fmt.Errorf("canvas %s: texture has no readable pixels", entry.Name())
	}
	pix := sw.Pixmap()
	if bg != nil {
		pix = pix.Flatten(*bg)
		log.Debug("flattened", "canvas", entry.Name(), "background", *bg, "rgba", bg.NRGBA())
	}
	return pix.SavePNG(path, renderScale)
}

// fileName maps a canvas name to a safe file name.
func fileName(name string) string {
	b := []byte(name)
	for i, c := range b {
		if c == '/' || c == '\\' || c == ':' || c < 0x20 {
			b[i] = '_'
		}
	}
	return string(b)
}
