// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package hooks

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const downloadTimeout = 60 * time.Second

// download implements "@download <URL> <OUTFILE>".
func download(args []string, rootLocation string) (*ActionRecord, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("@download: expected <url> <outfile>, got %d args", len(args))
	}

	url, outfile := args[0], args[1]
	outPath := resolveUnderRoot(rootLocation, outfile)

	client := &http.Client{Timeout: downloadTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("@download: GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("@download: GET %s: unexpected status %s", url, resp.Status)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("@download: could not create %s: %w", outPath, err)
	}
	defer f.Close()

	n, err := io.Copy(f, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("@download: writing %s: %w", outPath, err)
	}

	return &ActionRecord{
		Hook:   "@download",
		Detail: fmt.Sprintf("downloaded %d bytes from %s to %s", n, url, outPath),
	}, nil
}
