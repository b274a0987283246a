package main

import "github.com/constanine/nginx-proxy-manager/cmd/npm/cmd"

func main() {
	cmd.Execute()
}
