// Package pipeline wires the stages of an export run together.
//
// # Exporter
//
// The Exporter runs the whole pipeline for the configured playlist:
//
//  1. Download the playlist page
//  2. Locate and decode the embedded payload
//  3. Find the playlist record
//  4. Map each track and write it to the output document
//
// # Basic Usage
//
//	exporter, err := pipeline.NewExporter(settings, func(event pipeline.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	playlist, err := exporter.Run(ctx)
//	if err != nil {
//	    os.Exit(pipeline.ExitCode(err))
//	}
//
// # Failures
//
// Every stage except track mapping is fatal and has its own exit status
// (see ExitCode). A malformed track is reported as a LevelWarning event
// and skipped; the run still succeeds.
package pipeline
