package main

import (
	"fmt"
	"os"
	"strconv"

	"glimpse-cli/internal/app"
	"glimpse-cli/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const (
	version = "1.0.0"
	repoURL = "https://github.com/cp-glimpse/glimpse-cli"
)

var (
	verbose   bool
	noTUI     bool
	precision int
	saveRun   bool
)

func getBinaryPath() string {
	exe, _ := os.Executable()
	return exe
}

func newLogger() *app.Logger {
	if verbose {
		return app.NewLogger(os.Stderr)
	}
	return app.NewNopLogger()
}

func generateCompletion(shell string) error {
	switch shell {
	case "bash":
		fmt.Println("# bash completion for glimpse")
		fmt.Println("_glimpse_completions() {")
		fmt.Println("    local cur prev opts")
		fmt.Println("    COMPREPLY=()")
		fmt.Println("    cur=\"${COMP_WORDS[COMP_CWORD]}\"")
		fmt.Println("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"")
		fmt.Println("    opts=\"eval list run completion help version --no-tui --verbose --help\"")
		fmt.Println("    if [[ $COMP_CWORD -eq 1 ]]; then")
		fmt.Println("        COMPREPLY=( $(compgen -W \"${opts}\" -- \"${cur}\") )")
		fmt.Println("    fi")
		fmt.Println("    return 0")
		fmt.Println("}")
		fmt.Println("complete -F _glimpse_completions glimpse")
	case "zsh":
		fmt.Println("# zsh completion for glimpse")
		fmt.Println("compdef _glimpse glimpse")
		fmt.Println("_glimpse() {")
		fmt.Println("    _arguments -C \\")
		fmt.Println("        '(-h --help)'{-h,--help}'[show help]' \\")
		fmt.Println("        '(-v --version)'{-v,--version}'[print version]' \\")
		fmt.Println("        '(-n --no-tui)'{-n,--no-tui}'[evaluate the demo point instead of the TUI]' \\")
		fmt.Println("        '*::command:->command'")
		fmt.Println("}")
	case "fish":
		fmt.Println("# fish completion for glimpse")
		fmt.Println("complete -c glimpse -f -a 'eval list run completion help version'")
		fmt.Println("complete -c glimpse -s h -l help -d 'Show help'")
		fmt.Println("complete -c glimpse -s v -l version -d 'Print version'")
		fmt.Println("complete -c glimpse -s n -l no-tui -d 'Evaluate the demo point instead of the TUI'")
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}
	return nil
}

func parseValues(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q", a)
		}
		out[i] = v
	}
	return out, nil
}

func main() {
	root := &cobra.Command{
		Use:   "glimpse",
		Short: "Evaluate code-generated numerical functions",
		Long:  "Glimpse drives code-generated numerical functions through their fixed calling convention.\n\nUse without arguments for an interactive evaluator, or the 'eval' and 'run' subcommands for batch work.\n\nFor more information, visit: " + repoURL,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Printf("glimpse v%s\n", version)
				fmt.Printf("Repository: %s\n", repoURL)
				fmt.Printf("Installed at: %s\n", getBinaryPath())
				return nil
			}

			cfg, err := app.LoadConfig(app.DefaultConfigPath())
			if err != nil {
				return err
			}
			ev := app.NewEvaluator(cfg, newLogger())

			if noTUI {
				// One call, one line, as the generated sample driver does.
				in := []float64{2.0}
				out, err := ev.Eval("f", in)
				if err != nil {
					return err
				}
				fmt.Println(app.FormatCall("f", in, out, cfg.Precision))
				return nil
			}

			p := tea.NewProgram(tui.New(ev, cfg))
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}

	root.Flags().BoolVarP(&noTUI, "no-tui", "n", false, "Evaluate the demo point instead of starting the TUI")
	root.Flags().BoolP("version", "v", false, "Print version information")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log evaluations as JSON lines on stderr")

	evalCmd := &cobra.Command{
		Use:   "eval [function] [values...]",
		Short: "Evaluate a generated function at the given inputs",
		Long:  "Evaluate a generated function at the given inputs.\n\nExamples:\n  - glimpse eval\n  - glimpse eval f 2.0\n  - glimpse eval ball 10 -3\n  - glimpse eval rosen 1 1 --precision 3",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(app.DefaultConfigPath())
			if err != nil {
				return err
			}
			if precision > 0 {
				cfg.Precision = precision
			}

			name := cfg.DefaultFunction
			var values []string
			if len(args) > 0 {
				name = args[0]
				values = args[1:]
			}
			f, err := app.Lookup(name)
			if err != nil {
				return err
			}

			var in []float64
			if len(values) == 0 && f.NIn() == 1 {
				in = []float64{2.0}
			} else {
				if in, err = parseValues(values); err != nil {
					return err
				}
			}

			ev := app.NewEvaluator(cfg, newLogger())
			out, err := ev.Eval(name, in)
			if err != nil {
				return err
			}
			fmt.Println(app.FormatCall(name, in, out, cfg.Precision))
			return nil
		},
	}
	evalCmd.Flags().IntVarP(&precision, "precision", "p", 0, "Decimal digits in the printed result")
	root.AddCommand(evalCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered generated functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range app.Functions() {
				fmt.Printf("%-10s in=%-16v out=%-18v sz_arg=%d sz_res=%d sz_iw=%d sz_w=%d\n",
					f.Name, f.In, f.Out, f.SzArg, f.SzRes, f.SzIW, f.SzW)
			}
			return nil
		},
	}
	root.AddCommand(listCmd)

	runCmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario file",
		Long:  "Run every evaluation a scenario YAML file describes.\n\nExamples:\n  - glimpse run scenarios/sweep.yaml\n  - glimpse run scenarios/sweep.yaml --save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(app.DefaultConfigPath())
			if err != nil {
				return err
			}
			sc, err := app.LoadScenario(args[0])
			if err != nil {
				return err
			}

			ev := app.NewEvaluator(cfg, newLogger())
			rows, err := app.RunScenario(sc, ev)
			if err != nil {
				return err
			}
			for _, row := range rows {
				fmt.Println(app.FormatCall(sc.Function, row.Inputs, row.Outputs, sc.Output.Precision))
			}

			if saveRun {
				content, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				dir, err := app.WriteRun(cfg.BuildDir, sc, content, rows)
				if err != nil {
					return err
				}
				fmt.Printf("run saved to %s\n", dir)
			}
			return nil
		},
	}
	runCmd.Flags().BoolVar(&saveRun, "save", false, "Write results.json and manifest.json under the build dir")
	root.AddCommand(runCmd)

	completionCmd := &cobra.Command{
		Use:   "completion [shell]",
		Short: "Generate shell completion",
		Long:  "Generate shell completion script for glimpse.\n\nExamples:\n  - glimpse completion bash >> ~/.bashrc\n  - glimpse completion zsh > ~/.zsh/completion/_glimpse\n  - glimpse completion fish > ~/.config/fish/completions/glimpse.fish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateCompletion(args[0])
		},
	}
	root.AddCommand(completionCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
