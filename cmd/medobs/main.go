// Command medobs is a terminal chat assistant for clinical observations.
package main

import "github.com/medobsmind/medobs/internal/commands"

func main() {
	commands.Execute()
}
