// Package display provides the terminal output of find-in-jars: match lines,
// the responsive progress line and fatal error messages.
//
// # Match Lines
//
// MatchPrinter writes one line per match to stdout:
//
//	printer := display.NewMatchPrinter(os.Stdout, "!", display.ColorEnabled(os.Stdout))
//	printer.Print("./lib/a.jar", "log4j.properties", spans)
//	// ./lib/a.jar!log4j.properties
//
// When colored, the archive path, the separator and each matched part of the
// entry get distinct colors.
//
// # Progress
//
// A StatusReporter announces the archive being searched. ResponsiveStatus keeps
// a single line that is truncated to the terminal width and erased with Clear
// before anything else is printed; QuietStatus prints nothing and is used when
// output is redirected:
//
//	status := display.NewStatusReporter(os.Stdout, os.Stderr)
//	for i, archive := range archives {
//	    status.Progress(i+1, len(archives), archive)
//	    // ... list and match ...
//	    status.Clear()
//	}
//
// # Errors
//
// PrintError renders a fatal error as "Error: <message>", red on a terminal.
package display
