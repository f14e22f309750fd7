// Copyright 2024 The Wikiabstract Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/patrickbrosi/wikiabstract/dump"
	"github.com/patrickbrosi/wikiabstract/extract"
	"github.com/patrickbrosi/wikiabstract/internal/pool"
	"github.com/patrickbrosi/wikiabstract/internal/reportlog"
	"github.com/patrickbrosi/wikiabstract/internal/stats"
)

var log *zap.SugaredLogger

// dumpLine is one (title, abstract) pair on its way to the output sink.
type dumpLine struct {
	title    string
	abstract string
	ok       bool
}

// run is the main entry point of the program.
func run(c *cli.Context) error {
	if !c.Args().Present() {
		return cli.Exit("no dump file provided; usage: wikiabstract [options] DUMP.xml", 1)
	}
	dumpPath := c.Args().First()

	debug := c.Bool("debug")
	quiet := c.Bool("quiet")
	maxParagraphs := c.Int("max-paragraphs")
	workers := c.Int("workers")
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	z, sync, err := reportlog.New(debug)
	if err != nil {
		panic(err)
	}
	log = z
	defer sync()

	in, err := os.Open(dumpPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("opening dump file: %v", err), 1)
	}
	defer in.Close()

	var out *os.File
	if outputPath := c.String("output"); outputPath != "" {
		out, err = os.Create(outputPath)
		if err != nil {
			panic(err)
		}
		defer out.Close()
	} else {
		out = os.Stdout
	}
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	st := &stats.Run{}
	driver := extract.NewDriver(maxParagraphs, log, st)
	var filter extract.NamespaceFilter

	reader := dump.NewReader(in)

	var readErr error
	next := func() (dump.Page, bool) {
		p, ok, nextErr := reader.Next()
		if nextErr != nil {
			readErr = nextErr
			return dump.Page{}, false
		}
		return p, ok
	}

	fn := func(p dump.Page) dumpLine {
		if !filter.Accept(p.Title) {
			st.IncSeen()
			st.IncSkippedNamespace()
			return dumpLine{}
		}
		title := dump.Decode(p.Title)
		abstract, ok := driver.Abstract(title, p.Revision.Text)
		return dumpLine{title: title, abstract: abstract, ok: ok}
	}

	emit := func(l dumpLine) {
		if !l.ok {
			return
		}
		fmt.Fprintf(writer, "%s\t%s\n", l.title, l.abstract)
	}

	pool.Run(workers, next, fn, emit)

	if readErr != nil {
		return cli.Exit(fmt.Sprintf("parsing dump: %v", readErr), 2)
	}

	if !quiet {
		log.Infow("run complete", "stats", st.String())
	}

	return nil
}

func main() {
	app := &cli.App{
		Name:      "wikiabstract",
		Version:   "v1.0.0",
		Compiled:  time.Now(),
		Usage:     "extract short plain-text abstracts from a Wikipedia XML dump",
		UsageText: "wikiabstract [options] DUMP.xml",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write abstracts to `FILE` (default is standard output)",
			},
			&cli.IntFlag{
				Name:  "max-paragraphs",
				Value: 10,
				Usage: "number of leading paragraphs to keep per abstract",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Value:   0,
				Usage:   "number of worker goroutines (default: number of CPUs)",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run in debug mode with human-readable logging",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "suppress the end-of-run stats line",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
