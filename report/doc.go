// Package report formats solving output to standard output: an instance
// summary on load, a live "\x1b[2K\r"-refreshed status line as the
// generational loop improves, and the final route list + total distance
// at termination. The live-status escape-code idiom is grounded on
// cbarrick-evo's example/tsp.Main print closure.
package report
