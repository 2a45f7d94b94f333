package main

import "github.com/jdlms/aws-costs/cmd"

func main() {
	cmd.Execute()
}
