package main

import "github.com/surge-downloader/areatext/cmd"

func main() {
	cmd.Execute()
}
