package footprint

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/stcorp/muninn-sentinel5p/util"
)

// codaReader bridges to the coda command line tooling when it is installed
// on the host. The executable name can be overridden through the CODADUMP
// environment variable; the lookup result is cached for the process
// lifetime.
type codaReader struct {
	tool      string
	once      sync.Once
	available bool
}

func newCodaReader() *codaReader {
	return &codaReader{tool: util.GetCodadumpTool()}
}

func (r *codaReader) Available() bool {
	r.once.Do(func() {
		resolved, err := exec.LookPath(r.tool)
		if err != nil {
			util.LogAlert(&util.BasicLogContext{},
				fmt.Sprintf("coda tooling not found (`%s`); product footprints will not be extracted", r.tool))
			return
		}
		r.tool = resolved
		r.available = true
	})
	return r.available
}

func (r *codaReader) Open(filename string) (Product, error) {
	// Probe the product up front so a missing or unreadable file fails here
	// rather than inside the dump tool.
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	return &codaProduct{tool: r.tool, filename: filename, file: file}, nil
}

// codaProduct is one probed product file; fetches shell out to the dump tool
type codaProduct struct {
	tool     string
	filename string
	file     *os.File
}

func (p *codaProduct) FetchString(nodePath string) (string, error) {
	output, err := exec.Command(p.tool, "ascii", "-p", nodePath, p.filename).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

func (p *codaProduct) Close() error {
	return p.file.Close()
}
