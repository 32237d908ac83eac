package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/claude/planlog/internal/history"
	"github.com/claude/planlog/internal/plan"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	inPath := flag.String("in", "-", "input file with pasted plan text, or - for stdin")
	b64 := flag.Bool("b64", false, "input is base64-encoded (as delivered by the share URL)")
	dateStr := flag.String("date", "", "log date as YYYY-MM-DD (default: today)")
	showHistory := flag.Int("history", 0, "print the last N renders and exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("planlog-render", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	hist, err := openHistory()
	if err != nil {
		// History is a convenience; rendering still works without it.
		log.Warn("history unavailable", "error", err)
	} else {
		defer hist.Close()
	}

	if *showHistory > 0 {
		if hist == nil {
			log.Error("history unavailable")
			os.Exit(1)
		}
		if err := printHistory(hist, *showHistory); err != nil {
			log.Error("listing history failed", "error", err)
			os.Exit(1)
		}
		return
	}

	date := time.Now()
	if *dateStr != "" {
		date, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			log.Error("invalid -date", "error", err)
			os.Exit(1)
		}
	}

	text, err := readInput(*inPath, *b64)
	if err != nil {
		log.Error("reading input failed", "error", err)
		os.Exit(1)
	}

	blocks := plan.ParseGrid(text)
	exercises := make([]plan.Exercise, 0, len(blocks))
	totalSets := 0
	for _, b := range blocks {
		ex := plan.Expand(b)
		totalSets += len(ex.Sets)
		exercises = append(exercises, ex)
	}
	rendered := plan.Render(exercises, date)

	fmt.Println(rendered)

	if hist != nil {
		if err := hist.Record(date.Format("2006-01-02"), len(exercises), totalSets, rendered); err != nil {
			log.Warn("recording history failed", "error", err)
		}
	}
}

func openHistory() (*history.DB, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return history.Open(filepath.Join(homeDir, ".planlog"))
}

func readInput(path string, b64 bool) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}

	if b64 {
		// Files and piped input usually end in a newline, which is not
		// valid base64.
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return "", fmt.Errorf("decoding plan data: %w", err)
		}
		return string(decoded), nil
	}
	return string(data), nil
}

func printHistory(hist *history.DB, limit int) error {
	entries, err := hist.Recent(limit)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Rendered At", "Log Date", "Exercises", "Sets"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.ID, e.RenderedAt.Format("2006-01-02 15:04"), e.LogDate, e.Exercises, e.Sets})
	}
	t.Render()
	return nil
}
