// Command embedfix rewrites social media links so they embed properly in chat.
//
// Usage:
//
//	embedfix 'look https://x.com/alice/status/12345'
//	echo 'https://www.instagram.com/p/ABC123/' | embedfix
//	embedfix -config settings.json -follow < messages.txt
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/codeGROOVE-dev/embedfix"
	"github.com/codeGROOVE-dev/embedfix/pkg/metrics"
	"github.com/codeGROOVE-dev/embedfix/pkg/settings"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("embedfix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "JSON settings file (defaults plus EMBEDFIX_* environment overrides when empty)")
	debug := fs.Bool("debug", false, "enable debug logging")
	verbose := fs.Bool("v", false, "verbose logging (same as -debug)")
	follow := fs.Bool("follow", false, "rewrite stdin line by line, reloading -config when it changes")
	printOptions := fs.Bool("options", false, "print the settings options as JSON and exit")
	cacheSize := fs.Int("cache", 256, "number of URL results to remember per settings version (0 disables)")
	metricsFile := fs.String("metrics-file", "", "write Prometheus metrics to this file on exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: embedfix [options] [text...]")
		fmt.Fprintln(stderr, "\nReads the message from the arguments, or from stdin when none are given.")
		fmt.Fprintln(stderr, "\nOptions:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr, "\nSupported sites:")
		fmt.Fprintln(stderr, "  - Twitter/X  (vxtwitter)")
		fmt.Fprintln(stderr, "  - Instagram  (ddinstagram)")
		fmt.Fprintln(stderr, "  - Reddit     (vxreddit)")
		fmt.Fprintln(stderr, "  - BlueSky    (bskye)")
		fmt.Fprintln(stderr, "  - TikTok     (tnktok)")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *printOptions {
		if err := outputJSON(stdout, settings.Options()); err != nil {
			fmt.Fprintf(stderr, "Output error: %v\n", err)
			return 1
		}
		return 0
	}

	// Setup logger
	logLevel := slog.LevelInfo
	if *debug || *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := settings.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	store := settings.NewStore(cfg)

	opts := []embedfix.Option{
		embedfix.WithStore(store),
		embedfix.WithLogger(logger),
		embedfix.WithCacheSize(*cacheSize),
	}
	var collector *metrics.Collector
	if *metricsFile != "" {
		if collector, err = metrics.NewCollector(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		opts = append(opts, embedfix.WithMetrics(collector))
		defer func() {
			if err := collector.WriteFile(*metricsFile); err != nil {
				logger.Warn("failed to write metrics", "path", *metricsFile, "error", err)
			}
		}()
	}
	plugin := embedfix.New(opts...)

	if *follow {
		if *configPath != "" {
			if err := settings.Watch(ctx, *configPath, store, logger); err != nil {
				logger.Warn("settings will not be reloaded", "error", err)
			}
		}
		if err := streamLines(ctx, plugin, stdin, stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	var text string
	if fs.NArg() > 0 {
		text = strings.Join(fs.Args(), " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error: read stdin: %v\n", err)
			return 1
		}
		text = string(data)
	}

	msg := &embedfix.Message{Content: text}
	plugin.BeforeSend("cli", msg)
	if _, err := io.WriteString(stdout, msg.Content); err != nil {
		fmt.Fprintf(stderr, "Output error: %v\n", err)
		return 1
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(stdout)
	}
	return 0
}

// streamLines treats every input line as a message and writes it back rewritten.
func streamLines(ctx context.Context, plugin *embedfix.Plugin, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	bw := bufio.NewWriter(w)
	for sc.Scan() {
		if ctx.Err() != nil {
			break
		}
		msg := &embedfix.Message{Content: sc.Text()}
		plugin.BeforeSend("stdin", msg)
		if _, err := fmt.Fprintln(bw, msg.Content); err != nil {
			return err
		}
		// Flush per line so interactive use sees output immediately.
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	return sc.Err()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
