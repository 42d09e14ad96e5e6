// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake play [variant]     - Play locally (Bubble Tea or tcell backend)
//	snake serve              - Start SSH server for remote play
//	snake list               - List available variants
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Use a custom YAML config
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal version of the classic game: steer the snake,
eat the fruit, grow, and do not run into the walls or yourself.

Available commands:
  play     - Play a game locally
  serve    - Start SSH server for remote play
  list     - Show available variants
  config   - Print the effective configuration

Examples:
  snake play
  snake play snake_fair --backend tcell
  snake serve --ssh :2222
  snake config > ~/.snake/configs/snake.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
