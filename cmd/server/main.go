package main

import "github.com/init-pkg/rework-tracker/internal/bootstrap"

func main() {
	bootstrap.Run()
}
