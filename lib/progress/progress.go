/* Copyright (C) 2023 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package progress

/* -------------------------------------------------------------------------- */

import "bytes"
import "fmt"
import "os"
import "strings"

/* -------------------------------------------------------------------------- */

// Status bar for tracking the progress of long running loops. N is the
// total number of steps, Step the print interval, and Width the width of
// the bar in characters.
type Status struct {
  N, Step, Width int
}

/* constructor
 * -------------------------------------------------------------------------- */

// New creates a status bar over n steps that is printed approximately
// the given number of times.
func New(n, updates int) Status {
  step := 1
  if updates > 0 && n/updates > 1 {
    step = n/updates
  }
  return Status{n, step, 40}
}

/* -------------------------------------------------------------------------- */

const clearLine = "\033[2K\r"

func (status Status) Render(i int) string {
  var buffer bytes.Buffer

  p := float64(i)/float64(status.N)
  k := int(p*float64(status.Width))
  if k > status.Width {
    k = status.Width
  }
  buffer.WriteString(clearLine)
  buffer.WriteString("|")
  buffer.WriteString(strings.Repeat("=", k))
  buffer.WriteString(strings.Repeat(" ", status.Width-k))
  fmt.Fprintf(&buffer, "| %6.2f%%", p*100)
  // add newline if finished
  if i >= status.N {
    buffer.WriteString("\n")
  }
  return buffer.String()
}

func (status Status) PrintStderr(i int) {
  if i % status.Step == 0 || i == status.N {
    fmt.Fprint(os.Stderr, status.Render(i))
  }
}
