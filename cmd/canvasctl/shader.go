package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggpaint/render"
)

var (
	shaderOutput string
	shaderSource bool

	shaderCmd = &cobra.Command{
		Use:   "shader",
		Short: "Compile the canvas shader to SPIR-V",
		Args:  cobra.NoArgs,
		RunE:  runShader,
	}
)

func init() {
	shaderCmd.Flags().StringVarP(&shaderOutput, "output", "o", "", "write SPIR-V to this file")
	shaderCmd.Flags().BoolVar(&shaderSource, "source", false, "print the WGSL source instead")
}

func runShader(cmd *cobra.Command, _ []string) error {
	if shaderSource {
		_, err := fmt.Fprint(cmd.OutOrStdout(), render.CanvasShaderSource())
		return err
	}

	code, err := render.CompileShader()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "SPIR-V: %d words, entry points %s/%s\n",
		len(code), render.VertexEntryPoint, render.FragmentEntryPoint)

	if shaderOutput == "" {
		return nil
	}
	buf := make([]byte, 0, len(code)*4)
	for _, w := range code {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	if err := os.WriteFile(shaderOutput, buf, 0o644); err != nil {
		return err
	}
	log.Info("shader written", "file", shaderOutput, "bytes", len(buf))
	return nil
}
