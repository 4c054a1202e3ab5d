// Command convert-data converts every statistics folder into the full,
// deduplicated disability dataset.
package main

import (
	"os"

	"github.com/greendata20/disablility-monitoring/app"
	"github.com/greendata20/disablility-monitoring/converter"
)

func main() {
	os.Exit(app.Main(converter.VariantFull))
}
