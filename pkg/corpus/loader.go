// Package corpus seeds a completer from plain text files.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordlearn/internal/utils"
	"github.com/charmbracelet/log"
)

// MaxLineSize bounds a single passage read from a corpus file
const MaxLineSize = 1 << 20

// Trainer is the part of a completer the loader needs
type Trainer interface {
	Train(text string)
}

// LoaderStats describes what a load pass trained on
type LoaderStats struct {
	Files int
	Lines int
	Bytes int
}

func (s *LoaderStats) add(other LoaderStats) {
	s.Files += other.Files
	s.Lines += other.Lines
	s.Bytes += other.Bytes
}

// Load trains on path, which is either a single file or a directory whose
// files ending in ext are read in name order.
func Load(trainer Trainer, path, ext string) (LoaderStats, error) {
	if utils.IsDir(path) {
		return LoadDir(trainer, path, ext)
	}
	return LoadFile(trainer, path)
}

// LoadDir trains on every file in dir ending in ext. A file that fails to
// load is logged and skipped; an empty or missing dir is an error.
func LoadDir(trainer Trainer, dir, ext string) (LoaderStats, error) {
	start := time.Now()
	var stats LoaderStats

	files, err := utils.ListFiles(dir, ext)
	if err != nil {
		return stats, err
	}
	if len(files) == 0 {
		return stats, fmt.Errorf("no corpus files matching *%s found in %s", ext, dir)
	}

	for _, file := range files {
		fileStats, err := LoadFile(trainer, file)
		if err != nil {
			log.Warnf("Skipping corpus file %s: %v", file, err)
			continue
		}
		stats.add(fileStats)
	}

	log.Debugf("Loaded %d/%d corpus files (%d lines) from %s in %v",
		stats.Files, len(files), stats.Lines, dir, time.Since(start))
	return stats, nil
}

// LoadFile trains on each line of a file as its own passage
func LoadFile(trainer Trainer, path string) (LoaderStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return LoaderStats{}, fmt.Errorf("failed to open corpus file %s: %w", path, err)
	}
	defer file.Close()

	stats, err := LoadReader(trainer, file)
	if err != nil {
		return stats, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}
	stats.Files = 1
	log.Debugf("Trained on %s: %d lines", path, stats.Lines)
	return stats, nil
}

// LoadReader trains on each line of r. Line endings are not word
// separators for the completer, so lines are trained one at a time.
func LoadReader(trainer Trainer, r io.Reader) (LoaderStats, error) {
	var stats LoaderStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		stats.Bytes += len(scanner.Bytes())
		if line == "" {
			continue
		}
		trainer.Train(line)
		stats.Lines++
	}
	return stats, scanner.Err()
}
