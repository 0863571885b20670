// Command picdesk loads the images of one directory into a sectioned index
// and prints the resulting layout.
//
// Usage:
//
//	picdesk [-config path] [-dir directory] [-sections 7,5,10]
//
// Configuration is read from a TOML file and PICDESK_* environment
// variables, e.g. PICDESK_BACKEND=minio or PICDESK_INDEX_SINGLE_SECTION=false.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/hupe1980/picdesk"
	"github.com/hupe1980/picdesk/imagefile"
	"github.com/hupe1980/picdesk/scan"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "picdesk:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("picdesk", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML configuration file")
	dir := fs.String("dir", "", "directory to load (overrides config)")
	sections := fs.String("sections", "", "comma separated section lengths; enables multi-section mode")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *dir != "" {
		cfg.Dir = *dir
	}
	if *sections != "" {
		lengths, err := parseLengths(*sections)
		if err != nil {
			return err
		}
		cfg.Index.SingleSection = false
		cfg.Index.SectionLengths = lengths
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	var mOpts []imagefile.Option
	if cfg.Index.CacheSize > 0 {
		mOpts = append(mOpts, imagefile.WithCache(cfg.Index.CacheSize))
	}
	if cfg.Index.RateLimit > 0 {
		mOpts = append(mOpts, imagefile.WithRateLimit(cfg.Index.RateLimit, int(cfg.Index.RateLimit)))
	}
	m, err := imagefile.NewMaterializer(store, mOpts...)
	if err != nil {
		return err
	}

	opts, err := cfg.IndexOptions()
	if err != nil {
		return err
	}
	opts = append(opts, picdesk.WithScanner(scan.New(store)))

	ix, err := picdesk.New[imagefile.ImageFile](m, opts...)
	if err != nil {
		return err
	}
	if err := ix.LoadFromDirectory(ctx, cfg.Dir); err != nil {
		return err
	}

	return printLayout(out, ix)
}

func parseLengths(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	lengths := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("section length %q: %w", p, err)
		}
		lengths = append(lengths, n)
	}
	return lengths, nil
}

func printLayout(w io.Writer, ix *picdesk.Index[imagefile.ImageFile]) error {
	if _, err := fmt.Fprintf(w, "%d items in %d sections\n", ix.Len(), ix.SectionCount()); err != nil {
		return err
	}
	for s, d := range ix.Sections() {
		if _, err := fmt.Fprintf(w, "section %d %s\n", s, d); err != nil {
			return err
		}
		for i := range d.Length {
			it, err := ix.ItemAt(picdesk.Path(s, i))
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "  %s %s\n", picdesk.Path(s, i), it.Data); err != nil {
				return err
			}
		}
	}
	return nil
}
