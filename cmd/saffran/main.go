// Command saffran runs the statistical word-segmentation simulation: a
// parameter sweep of simulated listeners through a learning phase and a
// timed recognition test, with the resulting latencies aggregated and
// written out as CSV tables and a SQLite database.
package main

func main() {
	Execute()
}
