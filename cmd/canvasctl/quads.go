package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggpaint/render"
)

var (
	quadsWidth    int
	quadsHeight   int
	quadsFacing   string
	quadsYaw      float32
	quadsPitch    float32
	quadsRotation int
	quadsHeld     bool

	quadsCmd = &cobra.Command{
		Use:   "quads",
		Short: "Print the geometry emitted for a canvas placement",
		Args:  cobra.NoArgs,
		RunE:  runQuads,
	}
)

func init() {
	quadsCmd.Flags().IntVar(&quadsWidth, "width", 16, "canvas width in pixels")
	quadsCmd.Flags().IntVar(&quadsHeight, "height", 16, "canvas height in pixels")
	quadsCmd.Flags().StringVar(&quadsFacing, "facing", "north", "facing: down, up, north, south, west, east")
	quadsCmd.Flags().Float32Var(&quadsYaw, "yaw", 0, "yaw in degrees")
	quadsCmd.Flags().Float32Var(&quadsPitch, "pitch", 0, "pitch in degrees")
	quadsCmd.Flags().IntVar(&quadsRotation, "rotation", 0, "quarter turns (mounted only)")
	quadsCmd.Flags().BoolVar(&quadsHeld, "held", false, "place the canvas in hand")
}

func runQuads(cmd *cobra.Command, _ []string) error {
	facing, err := render.ParseFacing(quadsFacing)
	if err != nil {
		return err
	}
	p := render.Placement{
		Width:    quadsWidth,
		Height:   quadsHeight,
		Facing:   facing,
		Yaw:      quadsYaw,
		Pitch:    quadsPitch,
		Rotation: quadsRotation,
		Light:    render.FullBright,
	}
	if quadsHeld {
		p.Mode = render.Held
	}

	out := cmd.OutOrStdout()
	for _, b := range render.Quads(p, "canvas") {
		fmt.Fprintf(out, "%s (%d quads)\n", b.Texture, len(b.Quads))
		for i, q := range b.Quads {
			for _, v := range q {
				fmt.Fprintf(out, "  %d pos=(%7.4f %7.4f %7.4f) uv=(%.4f %.4f) n=(%.2f %.2f %.2f)\n",
					i, v.Position[0], v.Position[1], v.Position[2], v.UV[0], v.UV[1],
					v.Normal[0], v.Normal[1], v.Normal[2])
			}
		}
	}
	return nil
}
