package main

import "github.com/oshokin/version-header/cmd/version-header/cmd"

func main() {
	cmd.Execute()
}
