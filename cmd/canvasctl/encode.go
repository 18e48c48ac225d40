package main

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/config"
	"github.com/gogpu/ggpaint/protocol"
)

var (
	encodeOutput  string
	encodeName    string
	encodeVersion int
	encodeFlags   bool
	encodeAppend  bool

	encodeCmd = &cobra.Command{
		Use:   "encode IMAGE...",
		Short: "Encode images as canvas update frames",
		Long: `Encode turns each image into a canvas update frame. With several images the
canvas names get a numeric suffix. --with-flags appends a config sync frame
built from the feature flag file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEncode,
	}
)

func init() {
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "updates.bin", "output stream file")
	encodeCmd.Flags().StringVar(&encodeName, "name", "canvas", "canvas name")
	encodeCmd.Flags().IntVar(&encodeVersion, "version", 1, "picture version")
	encodeCmd.Flags().BoolVar(&encodeFlags, "with-flags", false, "append a config sync frame")
	encodeCmd.Flags().BoolVar(&encodeAppend, "append", false, "append to the output instead of replacing it")
}

func runEncode(_ *cobra.Command, args []string) error {
	codec, err := protocol.NewCodec()
	if err != nil {
		return err
	}
	defer codec.Close()

	var buf []byte
	for i, path := range args {
		data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return err
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}

		name := encodeName
		if len(args) > 1 {
			name = fmt.Sprintf("%s_%d", encodeName, i)
		}
		b := img.Bounds()
		buf, err = codec.AppendFrame(buf, protocol.CanvasUpdate{
			Name:    name,
			Version: encodeVersion,
			Width:   b.Dx(),
			Height:  b.Dy(),
			Pixels:  ggpaint.PicturePixels(img),
		})
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		log.Debug("encoded", "canvas", name, "bytes", len(buf))
	}

	if encodeFlags {
		flags, err := config.Load(flagsPath())
		if err != nil {
			return err
		}
		buf, err = codec.AppendFrame(buf, protocol.ConfigSync{Flags: flags.SyncMessage()})
		if err != nil {
			return err
		}
	}

	mode := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if encodeAppend {
		mode = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(encodeOutput, mode, 0o644) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if _, err := f.Write(buf); err != nil {
		_ = f.Close()
		return err
	}
	log.Info("stream written", "file", encodeOutput, "bytes", len(buf))
	return f.Close()
}
