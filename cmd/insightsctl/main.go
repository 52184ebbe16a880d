package main

import "github.com/vfg2006/campaign-insights-api/internal/cli"

func main() {
	cli.Execute()
}
