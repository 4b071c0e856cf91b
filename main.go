package main

import "github.com/jsphweid/seqc/cmd"

func main() {
	cmd.Execute()
}
