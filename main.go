package main

import "github.com/fitquest/fitquest-api/cmd"

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cmd.SetVersion(version, commit)
	cmd.Execute()
}
