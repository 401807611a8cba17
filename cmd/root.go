// Package cmd implements the CLI command structure for guess.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/guess-go/internal/config"
	"github.com/nibzard/guess-go/internal/logging"
	"github.com/nibzard/guess-go/internal/scores"
	"github.com/nibzard/guess-go/internal/session"
	"github.com/nibzard/guess-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// noSaveWord is the positional form of --no-save.
const noSaveWord = "no-save"

// streams are the process stdio a command reads and writes.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// Run executes the guess CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
}

func run(ctx context.Context, args []string, std streams) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("guess", flag.ContinueOnError)
	fs.SetOutput(std.err)
	fs.Usage = func() {
		printUsage(fs, std.err)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	loaded, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := loaded.Config
	if *help {
		printUsage(fs, std.out)
		return nil
	}
	if *showVersion {
		return versionCommand(std.out)
	}

	// Determine the subcommand. No args, a flag, or the no-save word means play.
	subcommand := "play"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") && remainingArgs[0] != noSaveWord {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	logger := logging.FromConfig(std.err, cfg)

	switch subcommand {
	case "play":
		return playCommand(ctx, cfg, logger, remainingArgs, std)
	case "scores":
		return scoresCommand(cfg, logger, remainingArgs, std)
	case "doctor":
		return doctorCommand(cfg, remainingArgs, std)
	case "config":
		return configCommand(loaded, remainingArgs, std)
	case "version":
		return versionCommand(std.out)
	case "help":
		printUsage(fs, std.out)
		return nil
	default:
		fmt.Fprintf(std.err, "Unknown command: %s\n", subcommand)
		printUsage(fs, std.err)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// playCommand runs an interactive session.
func playCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string, std streams) error {
	for _, arg := range args {
		if arg != noSaveWord {
			return fmt.Errorf("unexpected argument: %s", arg)
		}
		cfg.NoSave = true
	}

	store := scores.Open(cfg.ScoresFile,
		scores.WithPersistence(!cfg.NoSave),
		scores.WithLogger(logger),
	)
	console := ui.NewConsole(std.in, std.out)

	ctrl := session.New(console, store,
		session.WithLogger(logger),
		session.WithTop(cfg.Top),
		session.WithExitCommand(cfg.ExitCommand),
		session.WithPlayer(cfg.Player),
	)
	return ctrl.Run(ctx)
}

// configCommand prints the effective configuration or an example file.
func configCommand(loaded *config.ConfigWithSources, args []string, std streams) error {
	if len(args) > 0 {
		switch args[0] {
		case "example":
			fmt.Fprint(std.out, config.ExampleConfig())
			return nil
		default:
			return fmt.Errorf("unknown config command: %s", args[0])
		}
	}

	cfg := loaded.Config
	fmt.Fprintln(std.out, "Effective configuration:")
	for _, field := range config.Fields() {
		value := cfg.Value(field)
		if value == "" {
			value = `""`
		}
		fmt.Fprintf(std.out, "  %-15s = %-30s (%s)\n", field, value, loaded.Sources[field])
	}
	if len(cfg.Files) == 0 {
		fmt.Fprintln(std.out, "\nNo config files found.")
		return nil
	}
	fmt.Fprintln(std.out, "\nConfig files:")
	for _, f := range cfg.Files {
		fmt.Fprintf(std.out, "  %s\n", f)
	}
	return nil
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "guess version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Guess - A number guessing game for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  guess [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  play [no-save]    Play the game (default command)")
	fmt.Fprintln(w, "  scores            Show the leaderboard without playing")
	fmt.Fprintln(w, "  doctor            Check config and the score history file")
	fmt.Fprintln(w, "  config [example]  Show effective config, or print an example file")
	fmt.Fprintln(w, "  version           Show version information")
	fmt.Fprintln(w, "  help              Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Scores Options (use with 'scores' command):")
	fmt.Fprintln(w, "  -format string")
	fmt.Fprintln(w, "        Output format (text|json|yaml)")
	fmt.Fprintln(w, "  -top int")
	fmt.Fprintln(w, "        Entries to show (0 = all)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Doctor Options (use with 'doctor' command):")
	fmt.Fprintln(w, "  -v    List every validation error")
}
