// cmd/chopper/main.go
package main

import (
	"github.com/mariofajardo/chopper/internal/app"
	"github.com/mariofajardo/chopper/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
