package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/strand/internal/app"
)

func (c *cli) newSpliceCmd() *cobra.Command {
	var printText bool

	cmd := &cobra.Command{
		Use:   "splice <enzyme> <splicee> [file|-]",
		Short: "Cut DNA at every enzyme site and splice in new material",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.newApp(nil)
			if err != nil {
				return err
			}
			_, err = a.Splice(cmd.Context(), app.SpliceRequest{
				Enzyme:  args[0],
				Splicee: args[1],
				Source:  sourceArg(args, 2),
				Print:   printText,
			})
			return err
		},
	}

	cmd.Flags().BoolVarP(&printText, "print", "p", false, "also print the resulting strand")
	return cmd
}

func (c *cli) newReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [file|-]",
		Short: "Print the reverse of a DNA strand",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.newApp(nil)
			if err != nil {
				return err
			}
			_, err = a.Reverse(cmd.Context(), sourceArg(args, 0))
			return err
		},
	}
}
