package main

import "call-scripter/cmd/scripter/cmd"

// @title           Call Scripter API
// @version         1.0
// @description     Upload call recordings, transcribe them and generate call scripts.
// @BasePath        /
func main() {
	cmd.Execute()
}
