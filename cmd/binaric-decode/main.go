/*
NAME
  main.go

DESCRIPTION
  main.go is the binaric-decode command-line frontend (§6): it reads a WAV
  transmission and a frequency plan from disk and writes the decoded
  message document to stdout or a file.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Command binaric-decode decodes a binaric WAV transmission back into its
// message document using a frequency plan.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/binaric/codec"
	"github.com/ausocean/binaric/freqplan"
)

func main() {
	wavPath := flag.String("wav", "tx.wav", "path to the wav file to decode")
	planPath := flag.String("plan", "plan.json", "path to the frequency plan")
	outPath := flag.String("out", "", "path to write the decoded message document (default: stdout)")
	dataRate := flag.Float64("data-rate", codec.DefaultDataRate, "expected clock transition rate in Hz")
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

	opts := codec.DecodeOptions{
		DataRate: *dataRate,
		Logger:   log,
	}
	msg, warn, err := codec.Decode(*wavPath, plan, opts)
	if err != nil {
		log.Error("decoding", "error", err)
		os.Exit(1)
	}
	if warn.HeaderJSONParse {
		log.Warning("header did not parse as json, emitting empty header")
	}
	if warn.NoEdges {
		log.Warning("no clock transitions detected, emitting empty envelope")
	}

	doc, err := msg.Document()
	if err != nil {
		log.Error("rendering message document", "error", err)
		os.Exit(1)
	}

	if *outPath == "" {
		fmt.Println(string(doc))
		return
	}
	if err := os.WriteFile(*outPath, doc, 0644); err != nil {
		log.Error("writing output", "error", err)
		os.Exit(1)
	}
}
