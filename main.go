package main

import "github.com/khrees2412/jobcards/cmd"

func main() {
	cmd.Execute()
}
