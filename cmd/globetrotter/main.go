// Command globetrotter plans trips from the terminal: trips, cities,
// activities, budgets, itineraries, calendars and public sharing.
package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetPrefix("[globetrotter] ")
	log.SetFlags(log.LstdFlags)

	if err := execute(&app{out: os.Stdout}, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}
