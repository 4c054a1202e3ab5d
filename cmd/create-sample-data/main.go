// Command create-sample-data builds a small dataset from the first files of
// each statistics folder, for consumers that can't load the full dataset.
package main

import (
	"os"

	"github.com/greendata20/disablility-monitoring/app"
	"github.com/greendata20/disablility-monitoring/converter"
)

func main() {
	os.Exit(app.Main(converter.VariantSample))
}
