// cmd/rptidx/main.go
package main

import (
	"rptidx/internal/app"
	"rptidx/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
