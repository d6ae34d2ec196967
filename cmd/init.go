package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/ralphw/internal/scaffold"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize Ralph Wiggum in the current project",
	Long: `Initialize Ralph Wiggum in the current project.

Creates .kiro/agents/ralph-wiggum.json and .kiro/steering/ralph-context.md so
the Ralph agent can be used with kiro-cli.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workDir, err := os.Getwd()
		if err != nil {
			return err
		}

		res, err := scaffold.Init(workDir, initForce)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(res.Existing) > 0 {
			fmt.Fprintln(out, "Files already exist:")
			for _, f := range res.Existing {
				fmt.Fprintf(out, "  - %s\n", f)
			}
			fmt.Fprintln(out, "\nUse --force to overwrite.")
			return nil
		}

		for _, f := range res.Created {
			fmt.Fprintf(out, "Created %s\n", f)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Ralph Wiggum initialized!")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Start a loop with:")
		fmt.Fprintln(out, `  ralphw loop "Your task" --max-iterations 20 --completion-promise "DONE"`)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
	rootCmd.AddCommand(initCmd)
}
