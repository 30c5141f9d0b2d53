// Package cli implements the interactive train/complete menu.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordlearn/internal/logger"
	"github.com/bastiangx/wordlearn/internal/utils"
	"github.com/bastiangx/wordlearn/pkg/config"
	"github.com/bastiangx/wordlearn/pkg/suggest"
	"github.com/charmbracelet/log"
)

const (
	optionTrain    = "1"
	optionComplete = "2"
)

// MenuHandler runs the menu loop: option 1 trains on a passage, option 2
// completes a fragment. It is the only caller of its completer.
type MenuHandler struct {
	completer       suggest.ICompleter
	reader          *bufio.Reader
	out             io.Writer
	logger          *log.Logger
	minPrefixLength int
	maxPrefixLength int
	suggestLimit    int
	foldPrefix      bool
	showScores      bool
}

// NewMenuHandler creates a menu on stdin/stdout
func NewMenuHandler(completer suggest.ICompleter, cfg config.CliConfig, foldPrefix bool) *MenuHandler {
	return NewMenuHandlerWithIO(completer, cfg, foldPrefix, os.Stdin, os.Stdout)
}

// NewMenuHandlerWithIO creates a menu reading from in and writing to out
func NewMenuHandlerWithIO(completer suggest.ICompleter, cfg config.CliConfig, foldPrefix bool, in io.Reader, out io.Writer) *MenuHandler {
	return &MenuHandler{
		completer:       completer,
		reader:          bufio.NewReader(in),
		out:             out,
		logger:          logger.New("menu"),
		minPrefixLength: cfg.DefaultMinLen,
		maxPrefixLength: cfg.DefaultMaxLen,
		suggestLimit:    cfg.DefaultLimit,
		foldPrefix:      foldPrefix,
		showScores:      cfg.ShowScores,
	}
}

// Start runs the menu until the input ends.
func (h *MenuHandler) Start() error {
	for {
		h.printMenu()

		selection, err := h.readLine()
		if err != nil {
			return h.finish(err)
		}

		switch strings.TrimSpace(selection) {
		case optionTrain:
			h.println("Enter passage. Press `return` when done training.")
			passage, err := h.readLine()
			if err != nil {
				return h.finish(err)
			}
			h.handleTrain(passage)
		case optionComplete:
			h.println("Enter auto-complete candidate. Press `return` when finished.")
			fragment, err := h.readLine()
			if err != nil {
				return h.finish(err)
			}
			h.handleComplete(strings.TrimSpace(fragment))
		default:
			h.println("Please select an option from the menu.")
		}
	}
}

func (h *MenuHandler) handleTrain(passage string) {
	start := time.Now()
	h.completer.Train(passage)
	h.logger.Debugf("Trained in [ %v ]", time.Since(start))
}

// handleComplete checks the fragment length, asks the completer and prints
// the words in order of confidence.
func (h *MenuHandler) handleComplete(fragment string) {
	fragment = utils.FoldPrefix(fragment, h.foldPrefix)

	length := utf8.RuneCountInString(fragment)
	if length < h.minPrefixLength {
		h.println(fmt.Sprintf("Fragment `%s` is too short (minimum %d characters).", fragment, h.minPrefixLength))
		return
	}
	if length > h.maxPrefixLength {
		h.println(fmt.Sprintf("Fragment `%s` is too long (maximum %d characters).", fragment, h.maxPrefixLength))
		return
	}

	start := time.Now()
	suggestions := h.completer.Suggest(fragment, h.suggestLimit)
	h.logger.Debugf("Took [ %v ] for fragment '%s'", time.Since(start), fragment)

	if len(suggestions) == 0 {
		h.println(fmt.Sprintf("No previously seen words to complete `%s`", fragment))
		return
	}

	if h.showScores {
		h.println(renderScores(fragment, suggestions))
		return
	}
	h.println(renderWords(fragment, suggestions))
}

func (h *MenuHandler) printMenu() {
	h.println("[1]: Train algorithm")
	h.println("[2]: Auto-complete word")
}

// readLine reads one line without its line ending. A final line without a
// newline is still returned; io.EOF comes on the following call.
func (h *MenuHandler) readLine() (string, error) {
	line, err := h.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// finish ends the loop, treating end of input as a normal exit
func (h *MenuHandler) finish(err error) error {
	if errors.Is(err, io.EOF) {
		h.println("Thanks for looking!")
		return nil
	}
	return err
}

func (h *MenuHandler) println(s string) {
	fmt.Fprintln(h.out, s)
}
