/*
Package main runs the wordlearn completer as an IPC server or as an
interactive menu.

wordlearn learns word frequencies from the text it is trained on and
completes prefixes with the words it has seen, most frequent first.

# Usage

Start the msgpack IPC server on stdin/stdout:

	wordlearn

Seed it from a corpus and enable debug logging (logs go to stderr):

	wordlearn -corpus ./texts -d

Run the train/complete menu instead:

	wordlearn -c

# Configuration

Settings live in a TOML file under the user config dir (for example
~/.config/wordlearn/config.toml), created with defaults on first run. Use
-config to point at another file. See package config for the keys.

# Command Line Flags

	-version   Show current version
	-d         Enable debug mode with detailed logging
	-c         Run the menu instead of the IPC server
	-config    Path to a config file
	-corpus    File or directory of text to train on at startup
	-limit     Completions shown per fragment in the menu (0 for all)
	-prmin     Minimum fragment length in the menu
	-prmax     Maximum fragment length in the menu
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordlearn/internal/cli"
	"github.com/bastiangx/wordlearn/internal/utils"
	"github.com/bastiangx/wordlearn/pkg/config"
	"github.com/bastiangx/wordlearn/pkg/corpus"
	"github.com/bastiangx/wordlearn/pkg/server"
	"github.com/bastiangx/wordlearn/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "wordlearn"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nThanks for looking!\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the train/complete menu instead of the IPC server")
	configPath := flag.String("config", "", "Path to a config file (default: user config dir)")
	corpusPath := flag.String("corpus", "", "File or directory of text to train on at startup")
	limit := flag.Int("limit", -1, "Completions shown per fragment in the menu, 0 for all (default from config)")
	minPrefix := flag.Int("prmin", -1, "Minimum fragment length in the menu (default from config)")
	maxPrefix := flag.Int("prmax", -1, "Maximum fragment length in the menu (default from config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	defaultConfigPath := ""
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Failed to initialize path resolver: %v", err)
	} else if defaultConfigPath, err = pathResolver.GetConfigPath(config.DefaultFileName); err != nil {
		log.Warnf("Failed to determine config path: %v", err)
	}

	appConfig, usedPath, err := config.LoadConfigWithPriority(*configPath, defaultConfigPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedPath))

	completer := suggest.NewCompleter()

	seed := appConfig.Trainer.CorpusPath
	if *corpusPath != "" {
		seed = *corpusPath
	}
	if seed != "" {
		if pathResolver != nil {
			seed = pathResolver.ResolveCorpusPath(seed)
		}
		stats, err := corpus.Load(completer, seed, appConfig.Trainer.CorpusExt)
		if err != nil {
			log.Fatalf("Failed to load corpus: %v", err)
		}
		log.Debug("Corpus loaded", "path", seed, "files", stats.Files, "lines", stats.Lines)
	} else {
		log.Debug("No corpus given, starting with an empty vocabulary")
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		cliConfig := appConfig.CLI
		if *limit >= 0 {
			cliConfig.DefaultLimit = *limit
		}
		if *minPrefix >= 0 {
			cliConfig.DefaultMinLen = *minPrefix
		}
		if *maxPrefix >= 0 {
			cliConfig.DefaultMaxLen = *maxPrefix
		}
		log.Debug("Menu info:",
			"minPrefix", cliConfig.DefaultMinLen,
			"maxPrefix", cliConfig.DefaultMaxLen,
			"limit", cliConfig.DefaultLimit,
			"foldPrefix", appConfig.Trainer.FoldPrefix)

		menu := cli.NewMenuHandler(completer, cliConfig, appConfig.Trainer.FoldPrefix)
		if err := menu.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(completer, appConfig)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// printVersion writes a short styled banner to stderr
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordlearn ] learns your words, completes your prefixes")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}
