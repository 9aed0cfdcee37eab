package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/strand/internal/app"
)

func (c *cli) newScriptCmd() *cobra.Command {
	var (
		watch   bool
		opLimit int64
	)

	cmd := &cobra.Command{
		Use:   "script <file.lua>",
		Short: "Run a Lua script against the strand module",
		Long: `Runs a Lua script in a sandbox with a global "strand" module:

  local s = strand.new("gaattc")
  s:append("acgt")
  print(s:size(), s:reverse())

With --watch the script reruns whenever the file changes, until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]any{}
			if cmd.Flags().Changed("op-limit") {
				overrides["script.opLimit"] = opLimit
			}

			a, err := c.newApp(overrides)
			if err != nil {
				return err
			}
			return a.RunScript(cmd.Context(), app.ScriptRequest{
				Path:  args[0],
				Watch: watch,
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rerun the script when it changes")
	cmd.Flags().Int64Var(&opLimit, "op-limit", 0, "maximum strand operations per run (0 = unlimited)")
	return cmd
}
