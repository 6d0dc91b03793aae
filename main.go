package main

import "github.com/theirongolddev/venuecast/cmd"

func main() {
	cmd.Execute()
}
