package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixelforge/mobius"
)

func effectsCommand() *cobra.Command {
	var (
		height int
		width  int
	)

	cmd := &cobra.Command{
		Use:   "effects",
		Short: "List the eight predefined effects",
		Long: `Effects prints every predefined warp with its control points and the
solved Möbius coefficients for the given image size.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if height <= 0 || width <= 0 {
				return fmt.Errorf("height and width must be positive, got %dx%d", height, width)
			}
			out := cmd.OutOrStdout()
			for _, e := range mobius.Effects() {
				z, w := e.ControlPoints(height, width)
				co := e.Coefficients(height, width)
				fmt.Fprintf(out, "%s\n", e)
				for i := 0; i < 3; i++ {
					fmt.Fprintf(out, "  z%d = %7.2f%+7.2fi  ->  w%d = %7.2f%+7.2fi\n",
						i, real(z[i]), imag(z[i]), i, real(w[i]), imag(w[i]))
				}
				fmt.Fprintf(out, "  a=%.4g  b=%.4g  c=%.4g  d=%.4g\n\n", co.A, co.B, co.C, co.D)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&height, "height", 224, "image height")
	cmd.Flags().IntVar(&width, "width", 224, "image width")
	return cmd
}
