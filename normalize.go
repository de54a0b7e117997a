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

package atacpeaks

/* -------------------------------------------------------------------------- */

import "fmt"
import "math"
import "sort"

import "gonum.org/v1/gonum/stat"
import "gonum.org/v1/gonum/stat/distuv"

/* score field selector
 * -------------------------------------------------------------------------- */

// Selects the raw score column that normalization is computed on. Bed files
// are normalized on the score column, narrowPeak files on the qValue column.
type ScoreField int

const (
  ScoreFieldScore   ScoreField = iota
  ScoreFieldLogQval
)

func (field ScoreField) String() string {
  switch field {
  case ScoreFieldScore:
    return "score"
  case ScoreFieldLogQval:
    return "log_qval"
  }
  return "invalid"
}

func (obj Peaks) scoreColumn(field ScoreField) ([]float64, error) {
  switch field {
  case ScoreFieldScore:
    return obj.Scores, nil
  case ScoreFieldLogQval:
    if !obj.HasNarrowPeakFields() {
      return nil, fmt.Errorf("records have no `%v' column", field)
    }
    return obj.LogQvalues, nil
  }
  return nil, fmt.Errorf("invalid score field")
}

/* strategy registry
 * -------------------------------------------------------------------------- */

// A normalization strategy maps the raw scores of a single peak set onto a
// scale that is comparable across peak sets. It writes the derived scores
// to the NormScores column of a new object and leaves the raw input columns
// untouched. The result is in genomic order.
type NormalizeFunc func(Peaks, ScoreField) (Peaks, error)

type Normalizer map[string]NormalizeFunc

func NewNormalizer() Normalizer {
  return Normalizer{
    "gauss": normalizePeaksGauss,
    "map"  : normalizePeaksMap,
    "none" : normalizePeaksNone }
}

// Apply the named normalization strategy. Unregistered names result in an
// error.
func (normalizer Normalizer) Normalize(name string, peaks Peaks, field ScoreField) (Peaks, error) {
  f, ok := normalizer[name]
  if !ok {
    return Peaks{}, fmt.Errorf("Normalize(): unknown normalization strategy `%s'", name)
  }
  return f(peaks, field)
}

// Names of all registered strategies in alphabetical order.
func (normalizer Normalizer) Strategies() []string {
  names := []string{}
  for name := range normalizer {
    names = append(names, name)
  }
  sort.Strings(names)
  return names
}

/* rank sort
 * -------------------------------------------------------------------------- */

type scoresSort struct {
  scores  []float64
  indices []int
}

func newScoresSort(scores []float64) scoresSort {
  indices := make([]int, len(scores))
  for i := 0; i < len(indices); i++ {
    indices[i] = i
  }
  return scoresSort{scores, indices}
}

func (r scoresSort) Len() int {
  return len(r.indices)
}

func (r scoresSort) Less(i, j int) bool {
  return r.scores[r.indices[i]] < r.scores[r.indices[j]]
}

func (r scoresSort) Swap(i, j int) {
  r.indices[i], r.indices[j] = r.indices[j], r.indices[i]
}

/* -------------------------------------------------------------------------- */

// regularPointMap returns exactly n equidistant values on the open interval
// (0,1), i.e. i/(n+1) for i = 1..n. Values are rounded to five decimal
// places; rounding is skipped if the spacing between adjacent values drops
// below 1e-5, since it would otherwise merge neighboring ranks.
func regularPointMap(n int) []float64 {
  points := make([]float64, n)
  step   := 1.0/float64(n+1)

  for i := 1; i <= n; i++ {
    if step < 1e-5 {
      points[i-1] = float64(i)*step
    } else {
      points[i-1] = round5(float64(i)*step)
    }
  }
  return points
}

/* strategies
 * -------------------------------------------------------------------------- */

// Rank-based normalization: records are ranked by their raw score and the
// ranks are placed uniformly on the interval (0,1). This makes peak sets
// with different dynamic score ranges comparable.
func normalizePeaksMap(peaks Peaks, field ScoreField) (Peaks, error) {
  scores, err := peaks.scoreColumn(field)
  if err != nil {
    return Peaks{}, fmt.Errorf("normalizing peaks failed: %v", err)
  }
  result := peaks.Clone()
  // sort records by score, low to high
  r := newScoresSort(scores)
  sort.Stable(r)

  points := regularPointMap(len(scores))
  for rank, i := range r.indices {
    result.NormScores[i] = points[rank]
  }
  // return to genomic ordering
  return result.Sort(), nil
}

// Identity normalization: the raw scores are copied to the NormScores
// column without modification.
func normalizePeaksNone(peaks Peaks, field ScoreField) (Peaks, error) {
  scores, err := peaks.scoreColumn(field)
  if err != nil {
    return Peaks{}, fmt.Errorf("normalizing peaks failed: %v", err)
  }
  result := peaks.Clone()
  copy(result.NormScores, scores)

  return result.Sort(), nil
}

// Gaussian normalization: raw scores are converted to standard scores and
// mapped through the unit normal cumulative distribution function onto the
// interval (0,1). Degenerate peak sets with a single record or zero score
// variance normalize to 0.5.
func normalizePeaksGauss(peaks Peaks, field ScoreField) (Peaks, error) {
  scores, err := peaks.scoreColumn(field)
  if err != nil {
    return Peaks{}, fmt.Errorf("normalizing peaks failed: %v", err)
  }
  result := peaks.Clone()

  mean  := stat.Mean  (scores, nil)
  sigma := stat.StdDev(scores, nil)

  if len(scores) < 2 || sigma == 0.0 || math.IsNaN(sigma) {
    for i := 0; i < len(scores); i++ {
      result.NormScores[i] = 0.5
    }
  } else {
    for i := 0; i < len(scores); i++ {
      result.NormScores[i] = distuv.UnitNormal.CDF((scores[i] - mean)/sigma)
    }
  }
  return result.Sort(), nil
}
