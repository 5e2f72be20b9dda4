// cmd/colorseq/main.go
package main

import (
	"github.com/ryantkoehler/comline-color-seq-num/internal/app"
	"github.com/ryantkoehler/comline-color-seq-num/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
