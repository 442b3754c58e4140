/*
NAME
  main.go

DESCRIPTION
  main.go is the binaric-encode command-line frontend (§6): it reads a
  message document and a frequency plan from disk and writes the encoded
  transmission as a WAV file.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Command binaric-encode encodes a message document into a binaric WAV
// transmission using a frequency plan.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/binaric/codec"
	"github.com/ausocean/binaric/envelope"
	"github.com/ausocean/binaric/freqplan"
)

func main() {
	msgPath := flag.String("message", "message.json", "path to the message document to encode")
	planPath := flag.String("plan", "plan.json", "path to the frequency plan")
	outPath := flag.String("out", "tx.wav", "path to write the encoded wav file")
	clockSpeed := flag.Float64("clock-speed", codec.DefaultClockSpeed, "clock speed in Hz")
	sampleRate := flag.Int("sample-rate", codec.DefaultSampleRate, "output sample rate in Hz")
	verbose := flag.Bool("verbose", false, "log debug output")
	flag.Parse()

	lvl := logging.Info
	if *verbose {
		lvl = logging.Debug
	}
	log := logging.New(lvl, os.Stderr, false)

	plan, err := freqplan.LoadFile(*planPath)
	if err != nil {
		log.Error("loading frequency plan", "error", err)
		os.Exit(1)
	}

	doc, err := os.ReadFile(*msgPath)
	if err != nil {
		log.Error("reading message document", "error", err)
		os.Exit(1)
	}
	msg, err := envelope.ParseDocument(doc)
	if err != nil {
		log.Error("parsing message document", "error", err)
		os.Exit(1)
	}

	opts := codec.EncodeOptions{
		ClockSpeed: *clockSpeed,
		SampleRate: *sampleRate,
		Logger:     log,
	}
	if err := codec.Encode(*outPath, msg, plan, opts); err != nil {
		log.Error("encoding", "error", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", *outPath)
}
