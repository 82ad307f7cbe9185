// Package crop is a toy crop recommender trained in memory at start-up.
package crop

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrEmptyDataset = errors.New("crop dataset is empty")

type Features struct {
	N           float64 `json:"n" yaml:"n"`
	P           float64 `json:"p" yaml:"p"`
	K           float64 `json:"k" yaml:"k"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Humidity    float64 `json:"humidity" yaml:"humidity"`
	PH          float64 `json:"ph" yaml:"ph"`
	Rainfall    float64 `json:"rainfall" yaml:"rainfall"`
}

func (f Features) vector() [7]float64 {
	return [7]float64{f.N, f.P, f.K, f.Temperature, f.Humidity, f.PH, f.Rainfall}
}

type Sample struct {
	Features `yaml:",inline"`
	Label    string `json:"label" yaml:"label"`
}

// DefaultDataset is the four row table the assistant has always shipped with.
func DefaultDataset() []Sample {
	return []Sample{
		{Features{N: 90, P: 40, K: 40, Temperature: 21, Humidity: 80, PH: 6.5, Rainfall: 200}, "tomato"},
		{Features{N: 40, P: 35, K: 60, Temperature: 23, Humidity: 65, PH: 7.0, Rainfall: 150}, "chili"},
		{Features{N: 60, P: 50, K: 70, Temperature: 25, Humidity: 75, PH: 6.2, Rainfall: 180}, "tomato"},
		{Features{N: 80, P: 60, K: 80, Temperature: 28, Humidity: 60, PH: 6.8, Rainfall: 210}, "onion"},
	}
}

type datasetFile struct {
	Samples []Sample `yaml:"samples"`
}

// LoadDataset reads samples from a YAML file with a top level "samples" list.
func LoadDataset(path string) ([]Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f datasetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse crop dataset %s: %w", path, err)
	}
	if len(f.Samples) == 0 {
		return nil, ErrEmptyDataset
	}
	return f.Samples, nil
}

// Model is a 1-nearest-neighbour classifier over min-max scaled features.
type Model struct {
	samples []Sample
	min     [7]float64
	span    [7]float64
}

func Train(samples []Sample) (*Model, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyDataset
	}
	m := &Model{samples: append([]Sample{}, samples...)}
	lo := samples[0].vector()
	hi := lo
	for _, s := range samples[1:] {
		v := s.vector()
		for i := range v {
			lo[i] = math.Min(lo[i], v[i])
			hi[i] = math.Max(hi[i], v[i])
		}
	}
	m.min = lo
	for i := range hi {
		m.span[i] = hi[i] - lo[i]
	}
	return m, nil
}

type Prediction struct {
	Crop     string  `json:"crop"`
	Distance float64 `json:"distance"`
}

func (m *Model) Predict(f Features) Prediction {
	target := m.scale(f.vector())
	best := Prediction{Distance: math.Inf(1)}
	for _, s := range m.samples {
		d := distance(target, m.scale(s.vector()))
		if d < best.Distance {
			best = Prediction{Crop: s.Label, Distance: d}
		}
	}
	return best
}

func (m *Model) scale(v [7]float64) [7]float64 {
	var out [7]float64
	for i := range v {
		if m.span[i] == 0 {
			continue
		}
		out[i] = (v[i] - m.min[i]) / m.span[i]
	}
	return out
}

func distance(a, b [7]float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
