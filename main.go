package main

import "github.com/Sagarika1109/Network-Security-Scanner/cli"

// @title           Network Security Scanner API
// @version         1.0
// @description     REST API for asynchronous TCP port scans.
// @BasePath        /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cli.Run()
}
