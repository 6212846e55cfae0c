package main

import "github.com/theirongolddev/riskdash/cmd"

func main() {
	cmd.Execute()
}
