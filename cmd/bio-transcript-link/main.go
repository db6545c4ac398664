// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

/*
bio-transcript-link identifies pairs of assembled transcripts linked by
paired-end read alignments.  It reads alignments of the reads back onto the
transcripts (SAM, gzipped SAM, or BAM; stdin by default) and prints one
"transcript1:transcript2" line per linked pair, in the order the pairs reach
both thresholds.  Grouping linked pairs into clusters is left to a graph
tool downstream.

Example:

  samtools view accepted_hits.bam | bio-transcript-link -min-mate-pair-count 3 > pairs.txt
*/

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/txlink/encoding/samevent"
	"github.com/grailbio/txlink/linker"
	"github.com/klauspost/compress/gzip"
)

var (
	inputPath        = flag.String("input", "", "Input SAM/BAM path; reads stdin if empty or '-'")
	format           = flag.String("format", "auto", "Input format: 'auto' (BAM if the path ends in .bam, else SAM), 'sam', or 'bam'")
	outPath          = flag.String("out", "", "Output path for linked pairs; stdout if empty. Gzip-compressed if it ends in .gz")
	statsPath        = flag.String("stats", "", "If set, write run counters as TSV to this path")
	minBpCoverage    = flag.Int("min-bp-coverage", linker.DefaultOpts.MinBpCoverage, "Minimum alignment coverage needed to link two transcripts, in base pairs")
	minMatePairCount = flag.Int("min-mate-pair-count", 0, "Minimum number of mate pairs spanning two transcripts required to link them (required)")
	pruneSeenReads   = flag.Bool("prune-seen-reads", linker.DefaultOpts.PruneSeenReads, "Release the read names of a pair once it is linked, to save memory")
	skipMalformed    = flag.Bool("skip-malformed", linker.DefaultOpts.SkipMalformed, "Log and skip records that cannot be decoded instead of failing")
)

func bioTranscriptLinkUsage() {
	fmt.Printf("Usage: %s -min-mate-pair-count N [OPTIONS]\n", os.Args[0])
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
}

type runFlags struct {
	inputPath string
	format    samevent.Format
	outPath   string
	statsPath string
	opts      linker.Opts
}

// createOutput opens path for writing, or stdout if path is empty.  The
// returned close function must be called once writing is done.
func createOutput(ctx context.Context, path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	out, err := file.Create(ctx, path)
	if err != nil {
		return nil, nil, errors.E(err, "create", path)
	}
	if fileio.DetermineType(path) != fileio.Gzip {
		return out.Writer(ctx), func() error { return out.Close(ctx) }, nil
	}
	gz := gzip.NewWriter(out.Writer(ctx))
	return gz, func() error {
		once := errors.Once{}
		once.Set(gz.Close())
		once.Set(out.Close(ctx))
		return once.Err()
	}, nil
}

func writeStats(ctx context.Context, path string, stats linker.Stats) (err error) {
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return errors.E(err, "create", path)
	}
	defer file.CloseAndReport(ctx, out, &err)
	return stats.WriteTSV(out.Writer(ctx))
}

func run(ctx context.Context, f runFlags) (err error) {
	log.Printf("min_bp_coverage=%d", f.opts.MinBpCoverage)
	log.Printf("min_mate_pair_count=%d", f.opts.MinMatePairCount)

	sc, err := samevent.Open(ctx, f.inputPath, f.format)
	if err != nil {
		return err
	}
	out, closeOut, err := createOutput(ctx, f.outPath)
	if err != nil {
		_ = sc.Close()
		return err
	}
	name := f.inputPath
	if samevent.IsStdin(name) {
		name = "stdin"
	}
	log.Printf("parsing %s and creating transcript pairings", name)
	stats, err := linker.Run(ctx, f.opts, sc, out)
	once := errors.Once{}
	once.Set(err)
	once.Set(sc.Close())
	once.Set(closeOut())
	if err = once.Err(); err != nil {
		return err
	}
	stats.Log()
	if f.statsPath != "" {
		return writeStats(ctx, f.statsPath, stats)
	}
	return nil
}

func main() {
	flag.Usage = bioTranscriptLinkUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() > 0 {
		log.Fatalf("Unexpected positional arguments: '%s'; use -input to name the input", strings.Join(flag.Args(), " "))
	}
	mateCountSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "min-mate-pair-count" {
			mateCountSet = true
		}
	})
	if !mateCountSet {
		log.Fatalf("-min-mate-pair-count is required")
	}
	inputFormat, err := samevent.ParseFormat(*format)
	if err != nil {
		log.Fatalf("%v", err)
	}
	opts := linker.DefaultOpts
	opts.MinBpCoverage = *minBpCoverage
	opts.MinMatePairCount = *minMatePairCount
	opts.PruneSeenReads = *pruneSeenReads
	opts.SkipMalformed = *skipMalformed
	if err := opts.Validate(); err != nil {
		log.Fatalf("%v", err)
	}
	f := runFlags{
		inputPath: *inputPath,
		format:    inputFormat,
		outPath:   *outPath,
		statsPath: *statsPath,
		opts:      opts,
	}
	if err := run(vcontext.Background(), f); err != nil {
		log.Panicf("%v", err)
	}
	log.Debug.Printf("exiting")
}
