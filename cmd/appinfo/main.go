package main

import (
	"context"

	"github.com/MKhiriev/go-app-info/internal/cli"
)

func main() {
	cli.Main(context.Background())
}
